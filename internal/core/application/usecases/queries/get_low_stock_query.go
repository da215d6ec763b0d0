package queries

import (
	"errors"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"
)

var (
	ErrGetLowStockQueryIsNotConstructed = errors.New(
		"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
	)
)

// GetLowStockQuery retrieves the active stock items sitting under their
// reorder threshold.
type GetLowStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockQuery creates a query for depleted stock. Parameterless.
func NewGetLowStockQuery() GetLowStockQuery {
	return GetLowStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}

// LowStockResponse is one depleted item with its shortfall.
type LowStockResponse struct {
	ID          kernel.UUID
	Name        string
	Reference   string
	Quantity    int
	MinQuantity int
}

// Shortfall returns how many units separate the item from its threshold.
func (r LowStockResponse) Shortfall() int {
	return r.MinQuantity - r.Quantity
}
