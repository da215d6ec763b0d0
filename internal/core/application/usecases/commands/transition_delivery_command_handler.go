package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/services"
	"livraison/internal/core/ports"
	"livraison/internal/pkg/errs"
)

// TransitionDeliveryCommandHandler is the coordinator of the delivery
// lifecycle. Every transition runs the same pipeline:
//
//  1. authorization through the access guard, before any state is touched
//  2. the aggregate applies the transition, enforcing the lifecycle table
//     and the payload rules
//  3. side effects join the same transaction: the stock decrement on
//     deliver, the incident record on report_incident
//  4. the write lands through a status compare-and-set, so two actors
//     racing on the same delivery serialize; the loser gets a conflict
//  5. only after commit, the change feed and the notifier hear about it
//
// A conflict is retried once against fresh state: the retried transition
// re-runs authorization and the lifecycle table, so a second driver racing
// for the same pending delivery gets a clean ownership error instead of a
// spurious conflict.
type TransitionDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	accessGuard services.AccessGuard
	ledger      services.InventoryLedger
	publisher   ports.ChangePublisher
	notifier    ports.Notifier
	logger      *slog.Logger
}

// NewTransitionDeliveryCommandHandler creates the lifecycle coordinator.
func NewTransitionDeliveryCommandHandler(
	uowFactory UoWFactory,
	accessGuard services.AccessGuard,
	ledger services.InventoryLedger,
	publisher ports.ChangePublisher,
	notifier ports.Notifier,
	logger *slog.Logger,
) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: accessGuard,
		ledger:      ledger,
		publisher:   publisher,
		notifier:    notifier,
		logger:      logger,
	}
}

// Handle processes a lifecycle transition command.
func (h *TransitionDeliveryCommandHandler) Handle(ctx context.Context, cmd TransitionDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.transition(ctx, cmd)
	if errors.Is(err, errs.ErrVersionConflict) {
		err = h.transition(ctx, cmd)
	}
	return err
}

func (h *TransitionDeliveryCommandHandler) transition(ctx context.Context, cmd TransitionDeliveryCommand) error {
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

	if err = h.accessGuard.CanTransition(cmd.RequestedBy(), aggregate, cmd.Action().TargetStatus()); err != nil {
		return err
	}

	from := aggregate.Status()
	now := time.Now().UTC()

	var (
		movements []services.Movement
		record    *incident.Incident
	)

	switch cmd.Action() {
	case ActionTakeCharge:
		err = aggregate.TakeCharge(cmd.RequestedBy().ID(), cmd.RequestedBy().Name(), now)
	case ActionDeliver:
		movements, err = h.deliver(ctx, uow, aggregate, cmd, now)
	case ActionReportIncident:
		record, err = h.reportIncident(ctx, uow, aggregate, cmd, now)
	case ActionCancel:
		err = aggregate.Cancel(now)
	case ActionReopen:
		err = aggregate.Reopen(now)
	default:
		err = cmd.Action().Validate()
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.afterCommit(ctx, cmd, aggregate, record, movements, from, now)
	return nil
}

// deliver applies the confirmation and runs the stock ledger inside the
// open transaction. A decrement failure aborts the whole transition; the
// status change never outlives a failed ledger write.
func (h *TransitionDeliveryCommandHandler) deliver(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
	cmd TransitionDeliveryCommand,
	now time.Time,
) ([]services.Movement, error) {
	for _, uri := range cmd.Payload().Photos {
		if err := aggregate.AddPhoto(uri, now); err != nil {
			return nil, err
		}
	}

	if err := aggregate.Deliver(cmd.Payload().Signature, now); err != nil {
		return nil, err
	}

	demands := h.ledger.DemandFor(aggregate.Items())
	if len(demands) == 0 {
		return nil, nil
	}

	movements, err := uow.StockRepository().DecrementBatch(ctx, demands)
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// reportIncident applies the transition and opens the incident record in
// the same transaction.
func (h *TransitionDeliveryCommandHandler) reportIncident(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
	cmd TransitionDeliveryCommand,
	now time.Time,
) (*incident.Incident, error) {
	for _, uri := range cmd.Payload().Photos {
		if err := aggregate.AddPhoto(uri, now); err != nil {
			return nil, err
		}
	}

	if err := aggregate.ReportIncident(cmd.Payload().IncidentNote, now); err != nil {
		return nil, err
	}

	record, err := incident.NewIncident(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Payload().IncidentType,
		cmd.Payload().IncidentNote,
		cmd.RequestedBy().ID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.IncidentRepository().Add(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// afterCommit publishes the change and fires notifications. Failures here
// are logged, never returned: the transition is already durable.
func (h *TransitionDeliveryCommandHandler) afterCommit(
	ctx context.Context,
	cmd TransitionDeliveryCommand,
	aggregate *delivery.Delivery,
	record *incident.Incident,
	movements []services.Movement,
	from delivery.Status,
	now time.Time,
) {
	if err := h.publisher.Publish(ctx, ports.DeliveryChange{
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

	switch cmd.Action() {
	case ActionDeliver:
		if err := h.notifier.NotifyDelivered(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "delivered notification failed",
				"deliveryId", aggregate.ID().String(), "error", err)
		}
		for _, alert := range h.ledger.LowStockAlerts(movements) {
			if err := h.notifier.NotifyStockLow(ctx, alert); err != nil {
				h.logger.WarnContext(ctx, "low stock notification failed",
					"stockId", alert.StockID.String(), "error", err)
			}
		}
	case ActionReportIncident:
		if err := h.notifier.NotifyIncident(ctx, aggregate, record); err != nil {
			h.logger.WarnContext(ctx, "incident notification failed",
				"deliveryId", aggregate.ID().String(), "error", err)
		}
	}
}
