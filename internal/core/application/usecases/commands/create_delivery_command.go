package commands

import (
	"errors"
	"time"

	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliverySpec carries the attributes of the delivery to create.
// Required fields are validated by the command constructor; Geo, Notes,
// Price and VatRate are optional.
type CreateDeliverySpec struct {
	Reference   string
	ClientID    kernel.UUID
	ClientName  string
	Address     string
	Geo         *kernel.GeoPoint
	Priority    delivery.Priority
	ScheduledAt time.Time
	Items       []delivery.Item
	Notes       string
	Price       decimal.Decimal
	VatRate     decimal.Decimal
}

// CreateDeliveryCommand represents a request to register a new delivery.
// Only admins create deliveries; the handler enforces that through the
// access guard.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	requestedBy actor.Actor
	spec        CreateDeliverySpec

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Structural validation happens here; business validation (priority range,
// item quantities) happens in the domain constructor the handler calls.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	requestedBy actor.Actor,
	spec CreateDeliverySpec,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		spec:  spec,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the new delivery will carry.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequestedBy returns the actor issuing the command.
func (c CreateDeliveryCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// Spec returns the delivery attributes.
func (c CreateDeliveryCommand) Spec() CreateDeliverySpec {
	return c.spec
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
