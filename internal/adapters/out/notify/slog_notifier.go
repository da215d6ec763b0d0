// Package notify provides the log-backed Notifier implementation. It stands
// in for the push and email channels: every notification lands in the
// structured log with enough fields for an operator to act on.
package notify

import (
	"context"
	"log/slog"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/services"
)

// SlogNotifier writes notifications to a structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// NotifyAssigned logs a driver assignment.
func (n *SlogNotifier) NotifyAssigned(ctx context.Context, aggregate *delivery.Delivery) error {
	n.logger.InfoContext(ctx, "delivery assigned",
		"delivery_id", aggregate.ID().String(),
		"reference", aggregate.Reference(),
		"driver", aggregate.DriverName(),
		"scheduled_at", aggregate.ScheduledAt(),
	)
	return nil
}

// NotifyDelivered logs a confirmed delivery.
func (n *SlogNotifier) NotifyDelivered(ctx context.Context, aggregate *delivery.Delivery) error {
	n.logger.InfoContext(ctx, "delivery confirmed",
		"delivery_id", aggregate.ID().String(),
		"reference", aggregate.Reference(),
		"client", aggregate.ClientName(),
		"signature", aggregate.Signature(),
	)
	return nil
}

// NotifyIncident logs a reported incident.
func (n *SlogNotifier) NotifyIncident(
	ctx context.Context,
	aggregate *delivery.Delivery,
	record *incident.Incident,
) error {
	n.logger.WarnContext(ctx, "incident reported",
		"delivery_id", aggregate.ID().String(),
		"reference", aggregate.Reference(),
		"incident_id", record.ID().String(),
		"incident_type", record.Type().String(),
		"description", record.Description(),
	)
	return nil
}

// NotifyStockLow logs a movement that took an item below its reorder
// threshold.
func (n *SlogNotifier) NotifyStockLow(ctx context.Context, movement services.Movement) error {
	n.logger.WarnContext(ctx, "stock below reorder threshold",
		"stock_id", movement.StockID.String(),
		"reference", movement.Reference,
		"name", movement.Name,
		"remaining", movement.Remaining,
		"min_quantity", movement.MinQuantity,
	)
	return nil
}
