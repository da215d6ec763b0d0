package delivery

import (
	"errors"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemNameIsRequired is returned when a line item has no name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemUnitIsRequired is returned when a line item has no unit of measure.
	ErrItemUnitIsRequired = errs.NewValueIsRequiredError("item unit")
	// ErrItemIsNotConstructed is returned when using an Item that bypassed NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of a delivery: a named quantity of goods, optionally
// linked to a stock entity. Items without a stock link are legal; the
// inventory ledger simply skips them on completion.
type Item struct { //nolint:recvcheck //using for validation
	name      string
	reference string
	qty       int
	unit      string
	unitPrice decimal.Decimal
	stockID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. Quantity must be positive;
// unitPrice may be zero (price-less internal transfers); stockID may be nil.
func NewItem(name, reference string, qty int, unit string, unitPrice decimal.Decimal, stockID *kernel.UUID) (Item, error) {
	if name == "" {
		return Item{}, ErrItemNameIsRequired
	}
	if unit == "" {
		return Item{}, ErrItemUnitIsRequired
	}
	if qty < 1 || qty > maxItemQty {
		return Item{}, errs.NewValueIsOutOfRangeError("item qty", qty, 1, maxItemQty)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("item unit price")
	}
	if stockID != nil {
		if err := stockID.Validate(); err != nil {
			return Item{}, err
		}
	}

	return Item{
		name:      name,
		reference: reference,
		qty:       qty,
		unit:      unit,
		unitPrice: unitPrice,
		stockID:   stockID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// maxItemQty bounds a single line item; larger orders are split upstream.
const maxItemQty = 100000

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item designation.
func (i Item) Name() string {
	return i.name
}

// Reference returns the optional catalog reference.
func (i Item) Reference() string {
	return i.reference
}

// Qty returns the ordered quantity.
func (i Item) Qty() int {
	return i.qty
}

// Unit returns the unit of measure.
func (i Item) Unit() string {
	return i.unit
}

// UnitPrice returns the per-unit price; zero when unpriced.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// StockID returns the linked stock entity id, or nil when the line is not
// tracked in inventory.
func (i Item) StockID() *kernel.UUID {
	return i.stockID
}
