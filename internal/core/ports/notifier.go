package ports

import (
	"context"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/services"
)

// Notifier pushes operational notifications to the people who act on them:
// the driver who got an assignment, the dispatcher whose delivery landed,
// the admins watching incidents and stock levels. Notification failures are
// logged and swallowed by implementations; a dead notification channel must
// never fail a committed transition.
type Notifier interface {
	// NotifyAssigned tells the driver a delivery has been put on their run.
	NotifyAssigned(ctx context.Context, aggregate *delivery.Delivery) error

	// NotifyDelivered tells dispatch a delivery was confirmed.
	NotifyDelivered(ctx context.Context, aggregate *delivery.Delivery) error

	// NotifyIncident tells the admins a driver reported a problem.
	NotifyIncident(ctx context.Context, aggregate *delivery.Delivery, record *incident.Incident) error

	// NotifyStockLow tells the admins a movement took an item below its
	// reorder threshold.
	NotifyStockLow(ctx context.Context, movement services.Movement) error
}
