package main

import (
	"log/slog"

	"github.com/couchcryptid/fars-accident-service/internal/adapter/fars"
	"github.com/couchcryptid/fars-accident-service/internal/adapter/plot"
	"github.com/couchcryptid/fars-accident-service/internal/adapter/shapefile"
	"github.com/couchcryptid/fars-accident-service/internal/observability"
	"github.com/couchcryptid/fars-accident-service/internal/pipeline"
)

// build wires the loader, outline source and renderer into a pipeline.
func build() (*pipeline.Pipeline, *plot.Renderer) {
	metrics := observability.NewMetrics()

	renderer := plot.NewRenderer(outlineSource(cfg.StatesShapefile, logger), plot.Options{
		Dir:    cfg.PlotDir,
		Format: cfg.PlotFormat,
		Width:  cfg.PlotWidth,
		Height: cfg.PlotHeight,
	}, logger)

	p := pipeline.New(
		fars.NewLoader(logger),
		renderer,
		pipeline.Options{DataDir: cfg.DataDir, Concurrency: cfg.ReadConcurrency},
		logger,
		metrics,
	)
	return p, renderer
}

// outlineSource opens the states shapefile, or returns nil when none is set.
func outlineSource(path string, logger *slog.Logger) plot.OutlineSource {
	if path == "" {
		logger.Info("FARS_STATES_SHAPEFILE not set, maps will have no state outline")
		return nil
	}
	return shapefile.NewSource(path, logger)
}
