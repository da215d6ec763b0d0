package queries

import (
	"context"

	"livraison/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockQueryHandler reads depleted stock from the database, most
// depleted first.
type GetLowStockQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockQueryHandler creates a handler for low stock queries.
func NewGetLowStockQueryHandler(db *gorm.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

// Handle executes the low stock query. Inactive items are excluded, they
// are no longer replenished.
func (h GetLowStockQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockQuery,
) ([]LowStockResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]LowStockResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			reference,
			quantity,
			min_quantity
		FROM stock_items
		WHERE active AND quantity < min_quantity
		ORDER BY min_quantity - quantity DESC, reference
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item LowStockResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &item.Name, &item.Reference, &item.Quantity, &item.MinQuantity); err != nil {
			return nil, err
		}

		stockID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = stockID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
