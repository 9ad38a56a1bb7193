package pipeline

import (
	"context"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
)

// Summarize counts accidents per month for each requested year. Years that
// fail to load simply have no column.
func (p *Pipeline) Summarize(ctx context.Context, years []int) (domain.SummaryTable, error) {
	datasets := p.ReadYears(ctx, years)
	if err := ctx.Err(); err != nil {
		return domain.SummaryTable{}, err
	}

	table := domain.Summarize(datasets)
	p.metrics.SummariesBuilt.Inc()
	p.logger.Debug("summary built", "years", table.Years, "months", len(table.Months))
	return table, nil
}
