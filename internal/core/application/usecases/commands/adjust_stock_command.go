package commands

import (
	"errors"

	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
)

// AdjustStockCommand represents an administrative stock correction: the
// on-hand quantity is replaced with the counted absolute value. Corrections
// are absolute rather than relative so two overlapping counts cannot
// compound into a wrong total.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	stockID     kernel.UUID
	requestedBy actor.Actor
	quantity    int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to correct a stock quantity.
func NewAdjustStockCommand(
	stockID kernel.UUID,
	requestedBy actor.Actor,
	quantity int,
) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStockID(stockID),
		cmd.setRequestedBy(requestedBy),
		cmd.setQuantity(quantity),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// StockID returns the item to correct.
func (c AdjustStockCommand) StockID() kernel.UUID { return c.stockID }

// RequestedBy returns the actor issuing the command.
func (c AdjustStockCommand) RequestedBy() actor.Actor { return c.requestedBy }

// Quantity returns the counted absolute quantity.
func (c AdjustStockCommand) Quantity() int { return c.quantity }

func (c *AdjustStockCommand) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}

	c.stockID = stockID
	return nil
}

func (c *AdjustStockCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *AdjustStockCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
