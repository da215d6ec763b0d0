// Package stockrepo provides data transfer objects and mapping functions for stock persistence.
// This package implements the repository pattern for the stock item aggregate, including
// the row-locked batch decrement backing delivery confirmation.
package stockrepo

import (
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItemDTO represents the database structure for persisting stock items.
type StockItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:""`
	Reference   string          `gorm:"uniqueIndex"`
	Unit        string          `gorm:""`
	Quantity    int             `gorm:""`
	MinQuantity int             `gorm:""`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active      bool            `gorm:"index"`
	UpdatedAt   time.Time       `gorm:""`
}

// TableName specifies the database table name for stock items.
func (StockItemDTO) TableName() string {
	return "stock_items"
}

// fromDomain converts a stock item aggregate to its database representation.
func fromDomain(aggregate *stock.StockItem) StockItemDTO {
	return StockItemDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Reference:   aggregate.Reference(),
		Unit:        aggregate.Unit(),
		Quantity:    aggregate.Quantity(),
		MinQuantity: aggregate.MinQuantity(),
		UnitPrice:   aggregate.UnitPrice(),
		Active:      aggregate.Active(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a stock item aggregate using RestoreStockItem.
func toDomain(dto StockItemDTO) (*stock.StockItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreStockItem(stock.RestoreStockItemSpec{
		ID:          id,
		Name:        dto.Name,
		Reference:   dto.Reference,
		Unit:        dto.Unit,
		Quantity:    dto.Quantity,
		MinQuantity: dto.MinQuantity,
		UnitPrice:   dto.UnitPrice,
		Active:      dto.Active,
		UpdatedAt:   dto.UpdatedAt,
	})
}
