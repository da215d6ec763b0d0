package commands

import (
	"errors"

	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateStockItemCommandIsNotConstructed = errors.New(
		"CreateStockItemCommand must be created via NewCreateStockItemCommand constructor",
	)
)

// CreateStockItemCommand represents a request to add an item to the
// catalog with an opening quantity and a reorder threshold.
type CreateStockItemCommand struct { //nolint:recvcheck //using for validation
	stockID     kernel.UUID
	requestedBy actor.Actor
	name        string
	reference   string
	unit        string
	quantity    int
	minQuantity int
	unitPrice   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateStockItemCommand creates a command to register a stock item.
// Field-level validation (non-empty name, non-negative quantities) lives in
// the domain constructor the handler calls.
func NewCreateStockItemCommand(
	stockID kernel.UUID,
	requestedBy actor.Actor,
	name string,
	reference string,
	unit string,
	quantity int,
	minQuantity int,
	unitPrice decimal.Decimal,
) (CreateStockItemCommand, error) {
	cmd := CreateStockItemCommand{
		name:        name,
		reference:   reference,
		unit:        unit,
		quantity:    quantity,
		minQuantity: minQuantity,
		unitPrice:   unitPrice,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStockID(stockID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return CreateStockItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockItemCommandIsNotConstructed)
}

// StockID returns the identifier the new item will carry.
func (c CreateStockItemCommand) StockID() kernel.UUID { return c.stockID }

// RequestedBy returns the actor issuing the command.
func (c CreateStockItemCommand) RequestedBy() actor.Actor { return c.requestedBy }

// Name returns the catalog name.
func (c CreateStockItemCommand) Name() string { return c.name }

// Reference returns the SKU reference.
func (c CreateStockItemCommand) Reference() string { return c.reference }

// Unit returns the unit of measure.
func (c CreateStockItemCommand) Unit() string { return c.unit }

// Quantity returns the opening quantity.
func (c CreateStockItemCommand) Quantity() int { return c.quantity }

// MinQuantity returns the reorder threshold.
func (c CreateStockItemCommand) MinQuantity() int { return c.minQuantity }

// UnitPrice returns the catalog unit price.
func (c CreateStockItemCommand) UnitPrice() decimal.Decimal { return c.unitPrice }

func (c *CreateStockItemCommand) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}

	c.stockID = stockID
	return nil
}

func (c *CreateStockItemCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
