// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, the change feed and the
// notifier. Adapters implement them; use cases depend on them only.
package ports

import (
	"context"
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate, guarded by
	// a compare-and-set on the status column: the write only lands if the
	// stored status still equals expectedStatus. When the row has moved on,
	// Update returns a VersionConflictError and writes nothing; when the
	// row is gone it returns an ObjectNotFoundError. This is how two
	// drivers racing for the same pending delivery are serialized.
	Update(ctx context.Context, aggregate *delivery.Delivery, expectedStatus delivery.Status) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllActive retrieves every delivery not yet in a terminal status,
	// ordered by priority then scheduled date. The dispatch board query.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllByDriver retrieves the deliveries currently committed to the
	// given driver, terminal ones excluded.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*delivery.Delivery, error)

	// GetAllOverdue retrieves non-terminal deliveries scheduled before the
	// given instant. Used by the overdue sweep job.
	GetAllOverdue(ctx context.Context, before time.Time) ([]*delivery.Delivery, error)
}
