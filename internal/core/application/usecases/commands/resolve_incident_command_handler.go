package commands

import (
	"context"
	"time"

	"livraison/internal/core/domain/services"
)

// ResolveIncidentCommandHandler handles incident resolution. Admin only;
// the incident aggregate enforces that resolution happens at most once.
//
// Resolving an incident does not move the delivery: sending it back on the
// road (reopen) or abandoning it (cancel) is a separate, deliberate
// transition command.
type ResolveIncidentCommandHandler struct {
	uowFactory  IncidentUoWFactory
	accessGuard services.AccessGuard
}

// NewResolveIncidentCommandHandler creates a handler for incident resolution.
func NewResolveIncidentCommandHandler(
	uowFactory IncidentUoWFactory,
	accessGuard services.AccessGuard,
) ResolveIncidentCommandHandler {
	return ResolveIncidentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: accessGuard,
	}
}

// Handle processes the incident resolution command.
func (h *ResolveIncidentCommandHandler) Handle(ctx context.Context, cmd ResolveIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessGuard.CanResolveIncident(cmd.RequestedBy()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IncidentRepository()
	record, err := repo.Get(ctx, cmd.IncidentID())
	if err != nil {
		return err
	}

	if err = record.Resolve(cmd.RequestedBy().ID(), cmd.Resolution(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
