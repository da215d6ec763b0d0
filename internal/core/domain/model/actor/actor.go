package actor

import (
	"errors"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when using an Actor that bypassed NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ErrActorNameIsRequired is returned when creating an actor without a display name.
var ErrActorNameIsRequired = errs.NewValueIsRequiredError("actor name")

// Actor is the immutable identity attached to every mutation request:
// who is asking (id, display name) and in which capacity (role).
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role
	name string

	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor.
func NewActor(id kernel.UUID, role Role, name string) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		validateName(name),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return ErrActorNameIsRequired
	}
	return nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Name returns the actor's display name, used for driver snapshots.
func (a Actor) Name() string {
	return a.name
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// IsDriver reports whether the actor carries the driver role.
func (a Actor) IsDriver() bool {
	return a.role == RoleDriver
}
