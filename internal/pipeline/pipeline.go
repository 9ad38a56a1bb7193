package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
	"github.com/couchcryptid/fars-accident-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// FileReader loads a single accident file.
type FileReader interface {
	Read(ctx context.Context, path string) (*domain.Dataset, error)
}

// Options configures where files are found and how many are read at once.
type Options struct {
	DataDir     string
	Concurrency int
	Clock       clockwork.Clock // defaults to the real clock
}

// Pipeline orchestrates multi-year reads, month/year summaries and state maps.
type Pipeline struct {
	files       FileReader
	renderer    domain.MapRenderer
	dataDir     string
	concurrency int
	clock       clockwork.Clock
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline. A nil renderer makes MapState fail after
// validation instead of drawing.
func New(files FileReader, renderer domain.MapRenderer, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		files:       files,
		renderer:    renderer,
		dataDir:     opts.DataDir,
		concurrency: opts.Concurrency,
		clock:       opts.Clock,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil if the data directory is reachable.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	st, err := os.Stat(p.dataDir)
	if err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	if !st.IsDir() {
		return errors.New("data directory is not a directory")
	}
	return nil
}
