// Package jobs provides scheduled background tasks for the freight marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs never touch marketplace state directly; each one drives a command or
// query handler.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every 2 seconds to publish stored domain events to Kafka
// 2. MarketplaceStatsJob - Runs every 30 seconds to refresh the loads-per-status gauge
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayOutboxHandler, cfg.OutboxBatchSize, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(relay, jobs.NewMarketplaceStatsJob(loadsByStatusHandler, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed relay run is logged and counted; the batch stays in the outbox for the next run
// - Relay runs never overlap, so a slow broker delays the next batch instead of duplicating it
// - Failed job starts will stop any already running jobs
package jobs
