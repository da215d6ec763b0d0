package commands

import (
	"errors"

	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
	ErrAssignDriverNameIsRequired = errors.New("driver name is required")
)

// AssignDriverCommand represents a dispatcher's request to put a delivery
// on a driver's run. Reassignment of an already assigned delivery is a
// legal use of the same command.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	requestedBy actor.Actor
	driverID    kernel.UUID
	driverName  string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a delivery.
func NewAssignDriverCommand(
	deliveryID kernel.UUID,
	requestedBy actor.Actor,
	driverID kernel.UUID,
	driverName string,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRequestedBy(requestedBy),
		cmd.setDriver(driverID, driverName),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequestedBy returns the actor issuing the command.
func (c AssignDriverCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// DriverID returns the driver receiving the delivery.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DriverName returns the driver display name to snapshot on the delivery.
func (c AssignDriverCommand) DriverName() string {
	return c.driverName
}

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDriverCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *AssignDriverCommand) setDriver(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return ErrAssignDriverNameIsRequired
	}

	c.driverID = driverID
	c.driverName = driverName
	return nil
}
