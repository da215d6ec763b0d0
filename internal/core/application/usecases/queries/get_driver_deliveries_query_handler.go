package queries

import (
	"context"

	"livraison/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDriverDeliveriesQueryHandler reads one driver's run from the
// database. Unclaimed pending deliveries are included so the driver app
// can offer them for pickup.
type GetDriverDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverDeliveriesQueryHandler creates a handler for driver run queries.
func NewGetDriverDeliveriesQueryHandler(db *gorm.DB) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{db: db}
}

// Handle executes the driver run query.
func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDeliveriesQuery,
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
		WHERE (driver_id = ? AND status NOT IN (?, ?))
		   OR (driver_id IS NULL AND status = ?)
		ORDER BY
			CASE priority WHEN 'urgent' THEN 0 WHEN 'normal' THEN 1 ELSE 2 END,
			scheduled_at
	`,
		query.DriverID().Bytes(),
		delivery.StatusDelivered.String(),
		delivery.StatusCancelled.String(),
		delivery.StatusPending.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliverySummaries(rows)
}
