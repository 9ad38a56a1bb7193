// Package plot draws state accident maps with gonum/plot.
package plot

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
	"github.com/twpayne/go-geom"
	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// OutlineSource supplies boundary rings overlapping the plot bounds.
type OutlineSource interface {
	Outlines(ctx context.Context, b domain.Bounds) ([]*geom.LinearRing, error)
}

// Options controls where and how maps are written.
type Options struct {
	Dir    string
	Format string  // "png" or "svg"
	Width  float64 // inches
	Height float64 // inches
}

// Renderer implements domain.MapRenderer, writing one image per state/year.
type Renderer struct {
	outlines OutlineSource
	opts     Options
	logger   *slog.Logger
}

// NewRenderer creates a Renderer. A nil outline source draws points only.
func NewRenderer(outlines OutlineSource, opts Options, logger *slog.Logger) *Renderer {
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Width <= 0 {
		opts.Width = 8
	}
	if opts.Height <= 0 {
		opts.Height = 6
	}
	return &Renderer{outlines: outlines, opts: opts, logger: logger}
}

// Path returns the file a state/year map is written to.
func (r *Renderer) Path(state, year int) string {
	return filepath.Join(r.opts.Dir, fmt.Sprintf("state_%d_%d.%s", state, year, r.opts.Format))
}

// ContentType returns the MIME type of the rendered images.
func (r *Renderer) ContentType() string {
	if r.opts.Format == "svg" {
		return "image/svg+xml"
	}
	return "image/png"
}

// RenderStateMap draws the outline rings inside sp.Bounds and one small dot
// per point. Points with a missing coordinate are skipped.
func (r *Renderer) RenderStateMap(ctx context.Context, sp domain.StatePlot) error {
	p := gonum.New()
	p.Title.Text = fmt.Sprintf("STATE %d, %d", sp.State, sp.Year)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	if r.outlines != nil {
		rings, err := r.outlines.Outlines(ctx, sp.Bounds)
		if err != nil {
			return fmt.Errorf("load outlines: %w", err)
		}
		for _, ring := range rings {
			line, err := plotter.NewLine(ringXYs(ring))
			if err != nil {
				return fmt.Errorf("outline: %w", err)
			}
			line.LineStyle.Width = vg.Points(0.5)
			line.LineStyle.Color = color.Gray{Y: 96}
			p.Add(line)
		}
	}

	xys := pointXYs(sp.Points)
	if len(xys) > 0 {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(1)
		scatter.GlyphStyle.Color = color.Black
		p.Add(scatter)
	}

	// Add widens the axes to fit the outlines; clamp them back to the data.
	p.X.Min, p.X.Max = sp.Bounds.MinLon, sp.Bounds.MaxLon
	p.Y.Min, p.Y.Max = sp.Bounds.MinLat, sp.Bounds.MaxLat

	wt, err := p.WriterTo(vg.Length(r.opts.Width)*vg.Inch, vg.Length(r.opts.Height)*vg.Inch, r.opts.Format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.opts.Format, err)
	}

	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}
	path := r.Path(sp.State, sp.Year)
	if err := writeAtomic(path, wt); err != nil {
		return err
	}

	r.logger.Info("state map written", "path", path, "points", len(xys), "skipped", len(sp.Points)-len(xys))
	return nil
}

// writeAtomic writes to a temp file beside path and renames it into place, so
// readers of path never observe a partially written image.
func writeAtomic(path string, wt io.WriterTo) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // gone after a successful rename

	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func ringXYs(ring *geom.LinearRing) plotter.XYs {
	xys := make(plotter.XYs, ring.NumCoords())
	for i := range xys {
		c := ring.Coord(i)
		xys[i].X, xys[i].Y = c.X(), c.Y()
	}
	return xys
}

func pointXYs(points []domain.Point) plotter.XYs {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if pt.Missing() {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.Lon, Y: pt.Lat})
	}
	return xys
}
