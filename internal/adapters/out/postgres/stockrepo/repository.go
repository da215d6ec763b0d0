package stockrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/model/stock"
	"livraison/internal/core/domain/services"
	"livraison/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for duplicate keys.
const uniqueViolation = "23505"

// decrementSQL locks one stock row, clamps its quantity at zero and returns
// the state before and after in the same statement. Running it inside the
// delivery transaction means a failed decrement rolls back the status write.
const decrementSQL = `
WITH prev AS (
	SELECT id, name, reference, quantity, min_quantity
	FROM stock_items
	WHERE id = ? AND active
	FOR UPDATE
)
UPDATE stock_items s
SET quantity = GREATEST(prev.quantity - ?, 0), updated_at = ?
FROM prev
WHERE s.id = prev.id
RETURNING prev.name, prev.reference, prev.quantity, s.quantity, prev.min_quantity`

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock item to the database.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.StockItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("reference", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing stock item to the database.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.StockItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StockItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stock item by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.StockItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementBatch applies the given demands one locked row at a time within
// the ambient transaction. Each movement reports the quantity before and
// after the write. A demand naming an unknown or inactive item fails the
// whole batch so the caller's transaction rolls back untouched.
func (r *GormStockRepository) DecrementBatch(
	ctx context.Context,
	demands []services.Demand,
) ([]services.Movement, error) {
	now := time.Now().UTC()

	movements := make([]services.Movement, 0, len(demands))
	for _, demand := range demands {
		if err := demand.StockID.Validate(); err != nil {
			return nil, err
		}
		if demand.Qty <= 0 {
			return nil, errs.NewValueIsOutOfRangeError("qty", demand.Qty, 1, "unbounded")
		}

		row := r.db.WithContext(ctx).
			Raw(decrementSQL, demand.StockID.Bytes(), demand.Qty, now).
			Row()

		movement := services.Movement{
			StockID:   demand.StockID,
			Requested: demand.Qty,
		}
		err := row.Scan(
			&movement.Name,
			&movement.Reference,
			&movement.Previous,
			&movement.Remaining,
			&movement.MinQuantity,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewObjectNotFoundError("stock item", demand.StockID.String())
			}
			return nil, err
		}

		movements = append(movements, movement)
	}

	return movements, nil
}

// GetAllBelowMin retrieves active items under their reorder threshold, most
// depleted first.
func (r *GormStockRepository) GetAllBelowMin(ctx context.Context) ([]*stock.StockItem, error) {
	var dtos []StockItemDTO
	if err := r.db.WithContext(ctx).
		Where("active AND quantity < min_quantity").
		Order("min_quantity - quantity DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*stock.StockItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
