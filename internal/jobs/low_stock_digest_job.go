package jobs

import (
	"context"
	"log/slog"

	"livraison/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockDigestJob produces the hourly digest of stock items under their
// reorder threshold. The per-movement alert fires at confirmation time; the
// digest is the safety net catching items that went low by other means.
type LowStockDigestJob struct {
	handler queries.GetLowStockQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockDigestJob creates the hourly low-stock digest job.
func NewLowStockDigestJob(
	handler queries.GetLowStockQueryHandler,
	logger *slog.Logger,
) *LowStockDigestJob {
	return &LowStockDigestJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "low_stock_digest_job"),
	}
}

// Start begins the digest to run at the top of every hour.
func (j *LowStockDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		depleted, handleErr := j.handler.Handle(ctx, queries.NewGetLowStockQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock digest failed", "error", handleErr)
			return
		}

		if len(depleted) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "stock items below reorder threshold", "count", len(depleted))
		for _, item := range depleted {
			j.logger.WarnContext(ctx, "stock item needs reordering",
				"stock_id", item.ID.String(),
				"reference", item.Reference,
				"name", item.Name,
				"quantity", item.Quantity,
				"min_quantity", item.MinQuantity,
				"shortfall", item.Shortfall(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock digest job started (running hourly)")
	return nil
}

// Stop stops the digest job.
func (j *LowStockDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock digest job stopped")
}
