package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/load"
	"freight/internal/observability"

	"github.com/robfig/cron/v3"
)

type loadCounter interface {
	Handle(ctx context.Context, query queries.LoadsByStatusQuery) (map[load.Status]int, error)
}

// MarketplaceStatsJob refreshes the loads-per-status gauge every 30 seconds.
type MarketplaceStatsJob struct {
	handler loadCounter
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewMarketplaceStatsJob(handler loadCounter, logger *slog.Logger) *MarketplaceStatsJob {
	return &MarketplaceStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "marketplace_stats_job"),
	}
}

func (j *MarketplaceStatsJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Marketplace stats job started (running every 30 seconds)")
	return nil
}

// RunOnce keeps the previous gauge values when the count fails.
func (j *MarketplaceStatsJob) RunOnce(ctx context.Context) {
	counts, err := j.handler.Handle(ctx, queries.NewLoadsByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Marketplace stats job failed", "error", err)
		return
	}
	for status, n := range counts {
		observability.LoadsByStatus.WithLabelValues(status.String()).Set(float64(n))
	}
}

func (j *MarketplaceStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Marketplace stats job stopped")
}
