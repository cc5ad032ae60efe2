package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob      *OutboxRelayJob
	marketplaceStatsJob *MarketplaceStatsJob
}

func NewJobManager(outboxRelayJob *OutboxRelayJob, marketplaceStatsJob *MarketplaceStatsJob) *JobManager {
	return &JobManager{
		outboxRelayJob:      outboxRelayJob,
		marketplaceStatsJob: marketplaceStatsJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.marketplaceStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start marketplace stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.marketplaceStatsJob.Stop()
	jm.outboxRelayJob.Stop()
}
