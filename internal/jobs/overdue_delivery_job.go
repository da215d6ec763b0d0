package jobs

import (
	"context"
	"log/slog"
	"time"

	"livraison/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob sweeps for deliveries past their scheduled date that
// are still on the road. Runs every minute and logs each late delivery so
// dispatch can chase it.
type OverdueDeliveryJob struct {
	handler queries.GetOverdueDeliveriesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates the overdue sweep job.
func NewOverdueDeliveryJob(
	handler queries.GetOverdueDeliveriesQueryHandler,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue sweep to run every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueDeliveriesQuery(time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep failed", "error", handleErr)
			return
		}

		for _, d := range overdue {
			j.logger.WarnContext(ctx, "delivery is overdue",
				"delivery_id", d.ID.String(),
				"reference", d.Reference,
				"status", d.Status,
				"driver", d.DriverName,
				"scheduled_at", d.ScheduledAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
