package queries

import (
	"context"

	"livraison/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetOverdueDeliveriesQueryHandler reads late deliveries from the
// database.
type GetOverdueDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueDeliveriesQueryHandler creates a handler for lateness queries.
func NewGetOverdueDeliveriesQueryHandler(db *gorm.DB) GetOverdueDeliveriesQueryHandler {
	return GetOverdueDeliveriesQueryHandler{db: db}
}

// Handle executes the lateness query, most overdue first.
func (h GetOverdueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDeliveriesQuery,
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
		WHERE status NOT IN (?, ?) AND scheduled_at < ?
		ORDER BY scheduled_at
	`,
		delivery.StatusDelivered.String(),
		delivery.StatusCancelled.String(),
		query.Before(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliverySummaries(rows)
}
