package commands

import (
	"context"
	"log/slog"
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/services"
	"livraison/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// registration. The new delivery starts in pending status with no driver; a
// creation change is published to the feed after commit.
type CreateDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	accessGuard services.AccessGuard
	publisher   ports.ChangePublisher
	logger      *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	accessGuard services.AccessGuard,
	publisher ports.ChangePublisher,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: accessGuard,
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle processes the delivery creation command: authorization first, then
// domain construction, then a transactional insert.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessGuard.CanCreateDelivery(cmd.RequestedBy()); err != nil {
		return err
	}

	now := time.Now().UTC()
	spec := cmd.Spec()

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		spec.Reference,
		spec.ClientID,
		spec.ClientName,
		spec.Address,
		spec.Priority,
		spec.ScheduledAt,
		spec.Items,
		cmd.RequestedBy().ID(),
		now,
	)
	if err != nil {
		return err
	}

	if spec.Geo != nil {
		if err = aggregate.SetGeo(*spec.Geo); err != nil {
			return err
		}
	}
	aggregate.SetNotes(spec.Notes)
	if !spec.Price.IsZero() || !spec.VatRate.IsZero() {
		if err = aggregate.SetPricing(spec.Price, spec.VatRate); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.DeliveryChange{
		DeliveryID: aggregate.ID(),
		Reference:  aggregate.Reference(),
		From:       delivery.StatusUnknown,
		To:         delivery.StatusPending,
		ActorID:    cmd.RequestedBy().ID(),
		OccurredAt: now,
		Snapshot:   ports.SnapshotOf(aggregate),
	}); err != nil {
		h.logger.WarnContext(ctx, "change publication failed",
			"deliveryId", aggregate.ID().String(), "error", err)
	}

	return nil
}
