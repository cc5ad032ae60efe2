package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/observability"

	"github.com/robfig/cron/v3"
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes stored domain events to the broker every two seconds.
type OutboxRelayJob struct {
	handler outboxRelayer
	cmd     commands.RelayOutboxCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob relays at most batchSize events per run.
func NewOutboxRelayJob(handler outboxRelayer, batchSize int, logger *slog.Logger) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	return &OutboxRelayJob{
		handler: handler,
		cmd:     cmd,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "outbox_relay_job"),
	}, nil
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every 2 seconds)")
	return nil
}

// RunOnce relays one batch. A failed run leaves the batch in the outbox for
// the next tick.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	n, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		observability.OutboxRelayFailures.Inc()
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.DebugContext(ctx, "Relayed outbox events", "count", n)
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
