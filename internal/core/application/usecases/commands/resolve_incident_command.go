package commands

import (
	"errors"

	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"
)

var (
	ErrResolveIncidentCommandIsNotConstructed = errors.New(
		"ResolveIncidentCommand must be created via NewResolveIncidentCommand constructor",
	)
	ErrResolutionIsRequired = errors.New("resolution note is required")
)

// ResolveIncidentCommand represents an admin closing an incident with an
// outcome note. Resolution is final; a resolved incident never reopens.
type ResolveIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID  kernel.UUID
	requestedBy actor.Actor
	resolution  string

	guard guard.ConstructorGuard
}

// NewResolveIncidentCommand creates a command to resolve an incident.
func NewResolveIncidentCommand(
	incidentID kernel.UUID,
	requestedBy actor.Actor,
	resolution string,
) (ResolveIncidentCommand, error) {
	cmd := ResolveIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIncidentID(incidentID),
		cmd.setRequestedBy(requestedBy),
		cmd.setResolution(resolution),
	); err != nil {
		return ResolveIncidentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveIncidentCommand) Validate() error {
	return c.guard.Validate(ErrResolveIncidentCommandIsNotConstructed)
}

// IncidentID returns the incident to resolve.
func (c ResolveIncidentCommand) IncidentID() kernel.UUID { return c.incidentID }

// RequestedBy returns the actor issuing the command.
func (c ResolveIncidentCommand) RequestedBy() actor.Actor { return c.requestedBy }

// Resolution returns the outcome note.
func (c ResolveIncidentCommand) Resolution() string { return c.resolution }

func (c *ResolveIncidentCommand) setIncidentID(incidentID kernel.UUID) error {
	if err := incidentID.Validate(); err != nil {
		return err
	}

	c.incidentID = incidentID
	return nil
}

func (c *ResolveIncidentCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *ResolveIncidentCommand) setResolution(resolution string) error {
	if resolution == "" {
		return ErrResolutionIsRequired
	}

	c.resolution = resolution
	return nil
}
