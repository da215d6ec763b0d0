// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for coordinating deliveries.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every minute to flag deliveries past their scheduled date
// 2. LowStockDigestJob - Runs hourly to produce a digest of stock items under their reorder threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, lowStockHandler, logger)
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
// The overdue sweep uses the standard cron expression "* * * * *" (every
// minute); the low stock digest uses "0 * * * *" (top of every hour).
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; one failed run never stops the job
// - An empty result set is the normal case and produces no log output
// - Failed job starts will stop any already running jobs
package jobs
