package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/services"
	"livraison/internal/core/ports"
	"livraison/internal/pkg/errs"
)

// AssignDriverCommandHandler handles driver assignment. The write is
// guarded by the status compare-and-set; losing a race against a driver who
// claimed the delivery in the meantime retries once against fresh state and
// then surfaces the conflict.
type AssignDriverCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	accessGuard services.AccessGuard
	publisher   ports.ChangePublisher
	notifier    ports.Notifier
	logger      *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory DeliveryUoWFactory,
	accessGuard services.AccessGuard,
	publisher ports.ChangePublisher,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: accessGuard,
		publisher:   publisher,
		notifier:    notifier,
		logger:      logger,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.assign(ctx, cmd)
	if errors.Is(err, errs.ErrVersionConflict) {
		// Lost a race; the delivery may still be assignable. One retry
		// against fresh state.
		err = h.assign(ctx, cmd)
	}
	return err
}

func (h *AssignDriverCommandHandler) assign(ctx context.Context, cmd AssignDriverCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	aggregate, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = h.accessGuard.CanTransition(cmd.RequestedBy(), aggregate, delivery.StatusAssigned); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.AssignDriver(cmd.DriverID(), cmd.DriverName(), now); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.DeliveryChange{
		DeliveryID: aggregate.ID(),
		Reference:  aggregate.Reference(),
		From:       from,
		To:         aggregate.Status(),
		ActorID:    cmd.RequestedBy().ID(),
		OccurredAt: now,
		Snapshot:   ports.SnapshotOf(aggregate),
	}); err != nil {
		h.logger.WarnContext(ctx, "change publication failed",
			"deliveryId", aggregate.ID().String(), "error", err)
	}

	if err = h.notifier.NotifyAssigned(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "assignment notification failed",
			"deliveryId", aggregate.ID().String(), "error", err)
	}

	return nil
}
