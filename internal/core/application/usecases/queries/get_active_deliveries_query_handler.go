package queries

import (
	"context"

	"livraison/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads the dispatch board from the
// database: non-terminal deliveries, most urgent first.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the board query. Urgent deliveries sort first, then by
// scheduled date, so the top of the board is always the next thing to do.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]DeliverySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			priority,
			client_name,
			address,
			COALESCE(driver_name, ''),
			scheduled_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY
			CASE priority WHEN 'urgent' THEN 0 WHEN 'normal' THEN 1 ELSE 2 END,
			scheduled_at
	`, delivery.StatusDelivered.String(), delivery.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliverySummaries(rows)
}
