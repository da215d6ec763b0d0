package ports

import (
	"context"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/model/stock"
	"livraison/internal/core/domain/services"
)

// StockRepository defines the persistence contract for stock items and the
// atomic decrement backing the delivery ledger.
type StockRepository interface {
	// Add persists a new stock item to storage.
	Add(ctx context.Context, aggregate *stock.StockItem) error

	// Update persists changes to an existing stock item.
	Update(ctx context.Context, aggregate *stock.StockItem) error

	// Get retrieves a stock item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.StockItem, error)

	// DecrementBatch applies the merged demand of a confirmed delivery in a
	// single statement, row-locking each item and clamping quantities at
	// zero. It returns one movement per demand with the quantity before and
	// after, which the ledger uses for low-stock alerts. A demand naming an
	// unknown or inactive stock item fails the whole batch with an
	// ObjectNotFoundError so the surrounding transaction rolls back.
	DecrementBatch(ctx context.Context, demands []services.Demand) ([]services.Movement, error)

	// GetAllBelowMin retrieves the active items under their reorder
	// threshold, most depleted first. Used by the low-stock digest job.
	GetAllBelowMin(ctx context.Context) ([]*stock.StockItem, error)
}
