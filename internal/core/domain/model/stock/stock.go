package stock

import (
	"errors"
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrStockItemIsNotConstructed is returned when a StockItem instance was
	// not created through NewStockItem or RestoreStockItem.
	ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem or RestoreStockItem")

	// ErrNameIsRequired is returned when creating a stock item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrReferenceIsRequired is returned when creating a stock item without a
	// SKU reference.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("reference")

	// ErrUnitIsRequired is returned when creating a stock item without a unit
	// of measure.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")

	// ErrItemIsInactive is returned when mutating a deactivated stock item.
	ErrItemIsInactive = errors.New("stock item is inactive")
)

// StockItem is the inventory aggregate. Quantities are non-negative
// integers in the item's unit; a delivery confirmation decrements them
// atomically through the ledger, clamping at zero rather than going
// negative.
type StockItem struct {
	id          kernel.UUID
	name        string
	reference   string
	unit        string
	quantity    int
	minQuantity int
	unitPrice   decimal.Decimal
	active      bool
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewStockItem creates an active stock item with the given opening quantity.
func NewStockItem(
	id kernel.UUID,
	name string,
	reference string,
	unit string,
	quantity int,
	minQuantity int,
	unitPrice decimal.Decimal,
	now time.Time,
) (*StockItem, error) {
	s := &StockItem{
		active:    true,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setReference(reference),
		s.setUnit(unit),
		s.setQuantity(quantity),
		s.setMinQuantity(minQuantity),
		s.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStockItemSpec carries the persisted state of a stock item.
type RestoreStockItemSpec struct {
	ID          kernel.UUID
	Name        string
	Reference   string
	Unit        string
	Quantity    int
	MinQuantity int
	UnitPrice   decimal.Decimal
	Active      bool
	UpdatedAt   time.Time
}

// RestoreStockItem reconstructs a stock item aggregate from persistence.
func RestoreStockItem(spec RestoreStockItemSpec) (*StockItem, error) {
	s := &StockItem{
		active:    spec.Active,
		updatedAt: spec.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(spec.ID),
		s.setName(spec.Name),
		s.setReference(spec.Reference),
		s.setUnit(spec.Unit),
		s.setQuantity(spec.Quantity),
		s.setMinQuantity(spec.MinQuantity),
		s.setUnitPrice(spec.UnitPrice),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the stock item was created through a constructor.
func (s *StockItem) Validate() error {
	if s == nil {
		return ErrStockItemIsNotConstructed
	}
	return s.guard.Validate(ErrStockItemIsNotConstructed)
}

// IsEqual compares two stock items by identity.
func (s *StockItem) IsEqual(other *StockItem) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// SetQuantity replaces the on-hand quantity with an absolute count, the
// administrative correction after a physical inventory.
func (s *StockItem) SetQuantity(quantity int, now time.Time) error {
	if !s.active {
		return ErrItemIsInactive
	}
	if err := s.setQuantity(quantity); err != nil {
		return err
	}
	s.updatedAt = now
	return nil
}

// Decrement removes qty units, clamping at zero. It returns the quantity
// before the operation so callers can detect the low-stock threshold
// crossing. The database ledger performs the same clamp with a row lock;
// this method exists for the domain rule and in-memory tests.
func (s *StockItem) Decrement(qty int, now time.Time) (previous int, err error) {
	if !s.active {
		return 0, ErrItemIsInactive
	}
	if qty < 0 {
		return 0, errs.NewValueIsOutOfRangeError("qty", qty, 0, s.quantity)
	}

	previous = s.quantity
	s.quantity -= qty
	if s.quantity < 0 {
		s.quantity = 0
	}
	s.updatedAt = now
	return previous, nil
}

// IsBelowMin reports whether the on-hand quantity is under the reorder
// threshold.
func (s *StockItem) IsBelowMin() bool {
	return s.quantity < s.minQuantity
}

// Deactivate retires the item from the catalog. Quantities freeze; further
// mutations are refused. Deactivation is idempotent.
func (s *StockItem) Deactivate(now time.Time) {
	if !s.active {
		return
	}
	s.active = false
	s.updatedAt = now
}

// ID returns the stock item identity.
func (s *StockItem) ID() kernel.UUID { return s.id }

// Name returns the catalog name.
func (s *StockItem) Name() string { return s.name }

// Reference returns the SKU reference, e.g. "SKU-001".
func (s *StockItem) Reference() string { return s.reference }

// Unit returns the unit of measure.
func (s *StockItem) Unit() string { return s.unit }

// Quantity returns the on-hand quantity.
func (s *StockItem) Quantity() int { return s.quantity }

// MinQuantity returns the reorder threshold.
func (s *StockItem) MinQuantity() int { return s.minQuantity }

// UnitPrice returns the catalog unit price.
func (s *StockItem) UnitPrice() decimal.Decimal { return s.unitPrice }

// Active reports whether the item is still part of the catalog.
func (s *StockItem) Active() bool { return s.active }

// UpdatedAt returns the last mutation timestamp.
func (s *StockItem) UpdatedAt() time.Time { return s.updatedAt }

func (s *StockItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StockItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *StockItem) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	s.reference = reference
	return nil
}

func (s *StockItem) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}
	s.unit = unit
	return nil
}

func (s *StockItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	s.quantity = quantity
	return nil
}

func (s *StockItem) setMinQuantity(minQuantity int) error {
	if minQuantity < 0 {
		return errs.NewValueIsInvalidError("minQuantity")
	}
	s.minQuantity = minQuantity
	return nil
}

func (s *StockItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	s.unitPrice = unitPrice
	return nil
}
