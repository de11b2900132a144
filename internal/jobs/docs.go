// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the order lifecycle requires.
//
// # Available Jobs
//
// 1. StaleOrderCleanupJob - Periodically cancels Pending orders that were
// never confirmed within the configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, schedule, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup schedule is a standard five-field cron expression taken from
// configuration, so operators can tune how aggressively stale orders are
// swept without a redeploy.
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick; a failed run
// never stops the schedule. Orders that lose a concurrent update race are
// skipped by the handler and picked up again on the following run.
package jobs
