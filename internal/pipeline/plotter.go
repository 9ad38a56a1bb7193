package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
)

// MapState plots the accidents of one state for one year.
//
// The state must appear in the year's STATE column, otherwise an
// *domain.InvalidStateError is returned. A missing file is a hard failure.
// When nothing is left to draw the call logs and returns nil without rendering.
func (p *Pipeline) MapState(ctx context.Context, state, year int) error {
	d, err := p.readFile(ctx, year)
	if err != nil {
		p.metrics.PlotsRendered.WithLabelValues("error").Inc()
		return err
	}

	if !d.HasState(state) {
		p.metrics.PlotsRendered.WithLabelValues("invalid_state").Inc()
		return &domain.InvalidStateError{State: state, Year: year}
	}

	accidents := d.FilterState(state)
	if len(accidents) == 0 {
		p.metrics.PlotsRendered.WithLabelValues("empty").Inc()
		p.logger.Info("no accidents to plot", "state", state, "year", year)
		return nil
	}

	points := domain.CleanseCoordinates(accidents)
	bounds := domain.ComputeBounds(points)
	if bounds.Empty() {
		p.metrics.PlotsRendered.WithLabelValues("empty").Inc()
		p.logger.Info("no plottable coordinates", "state", state, "year", year, "accidents", len(accidents))
		return nil
	}

	if p.renderer == nil {
		p.metrics.PlotsRendered.WithLabelValues("error").Inc()
		return errors.New("no map renderer configured")
	}

	plot := domain.StatePlot{State: state, Year: year, Points: points, Bounds: bounds}
	if err := p.renderer.RenderStateMap(ctx, plot); err != nil {
		p.metrics.PlotsRendered.WithLabelValues("error").Inc()
		return fmt.Errorf("render state %d map for %d: %w", state, year, err)
	}

	p.metrics.PlotsRendered.WithLabelValues("rendered").Inc()
	p.logger.Debug("state map rendered", "state", state, "year", year, "points", len(points))
	return nil
}
