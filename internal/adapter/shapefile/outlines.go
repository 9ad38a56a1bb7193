// Package shapefile reads state boundary outlines from an ESRI shapefile,
// such as the Census TIGER/Line tl_2024_us_state.shp.
package shapefile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
	"github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
)

// Source loads outline rings from a shapefile on every call.
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource creates an outline source for the shapefile at path.
func NewSource(path string, logger *slog.Logger) *Source {
	return &Source{path: path, logger: logger}
}

// Outlines returns every polygon ring whose bounding box overlaps b. Holes and
// islands are returned as separate rings; callers draw them all as lines.
func (s *Source) Outlines(ctx context.Context, b domain.Bounds) ([]*geom.LinearRing, error) {
	reader, err := shp.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", s.path, err)
	}
	defer func() { _ = reader.Close() }()

	var rings []*geom.LinearRing
	var skipped int
	for reader.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok || poly == nil {
			skipped++
			continue
		}

		for _, ring := range polygonRings(poly) {
			rb := ring.Bounds()
			if b.Overlaps(rb.Min(0), rb.Min(1), rb.Max(0), rb.Max(1)) {
				rings = append(rings, ring)
			}
		}
	}

	if skipped > 0 {
		s.logger.Debug("skipped non-polygon shapes", "path", s.path, "skipped", skipped)
	}
	return rings, nil
}

// polygonRings splits a shapefile polygon into one ring per part.
func polygonRings(p *shp.Polygon) []*geom.LinearRing {
	if p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	rings := make([]*geom.LinearRing, 0, p.NumParts)
	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		end := int32(len(p.Points))
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		}
		if end-start < 2 {
			continue
		}

		flat := make([]float64, 0, 2*(end-start))
		for _, pt := range p.Points[start:end] {
			flat = append(flat, pt.X, pt.Y)
		}
		rings = append(rings, geom.NewLinearRingFlat(geom.XY, flat))
	}
	return rings
}
