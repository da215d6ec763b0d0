package jobs

import (
	"fmt"
	"log/slog"

	"livraison/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueDeliveryJob *OverdueDeliveryJob
	lowStockDigestJob  *LowStockDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	overdueHandler queries.GetOverdueDeliveriesQueryHandler,
	lowStockHandler queries.GetLowStockQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueDeliveryJob: NewOverdueDeliveryJob(overdueHandler, logger),
		lowStockDigestJob:  NewLowStockDigestJob(lowStockHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue delivery job: %w", err)
	}

	if err := jm.lowStockDigestJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueDeliveryJob.Stop()
		return fmt.Errorf("failed to start low stock digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueDeliveryJob.Stop()
	jm.lowStockDigestJob.Stop()
}
