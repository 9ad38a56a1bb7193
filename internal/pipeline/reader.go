package pipeline

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Load reads the accident file of every requested year and returns one result
// per year, in request order. A year that fails to load is logged as a warning
// and does not affect the others.
func (p *Pipeline) Load(ctx context.Context, years []int) []domain.YearResult {
	results := make([]domain.YearResult, len(years))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, year := range years {
		g.Go(func() error {
			results[i] = p.loadYear(ctx, year)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ReadYears is Load reduced to its datasets: failed years are nil slots.
func (p *Pipeline) ReadYears(ctx context.Context, years []int) []*domain.YearDataset {
	results := p.Load(ctx, years)
	out := make([]*domain.YearDataset, len(results))
	for i, r := range results {
		out[i] = r.Data
	}
	return out
}

func (p *Pipeline) loadYear(ctx context.Context, year int) domain.YearResult {
	d, err := p.readFile(ctx, year)
	if err != nil {
		p.logger.Warn("invalid year", "year", year, "error", err)
		return domain.YearResult{Year: year, Err: err}
	}
	yd := domain.NewYearDataset(year, d, p.clock.Now())
	p.logger.Debug("year loaded", "year", year, "rows", len(yd.Months), "loaded_at", yd.LoadedAt)
	return domain.YearResult{Year: year, Data: yd}
}

// readFile loads the full dataset for year. Errors are returned as is; the
// caller decides whether they are fatal.
func (p *Pipeline) readFile(ctx context.Context, year int) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := p.clock.Now()
	d, err := p.files.Read(ctx, filepath.Join(p.dataDir, domain.FileName(year)))
	p.metrics.ReadDuration.Observe(p.clock.Since(start).Seconds())
	if err != nil {
		p.metrics.FilesRead.WithLabelValues(readOutcome(err)).Inc()
		return nil, err
	}

	p.metrics.FilesRead.WithLabelValues("success").Inc()
	p.metrics.RowsLoaded.Add(float64(d.Len()))
	return d, nil
}

func readOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrMalformed):
		return "malformed"
	default:
		return "error"
	}
}
