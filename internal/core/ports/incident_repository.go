package ports

import (
	"context"

	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
)

// IncidentRepository defines the persistence contract for incident records.
type IncidentRepository interface {
	// Add persists a new incident to storage.
	Add(ctx context.Context, aggregate *incident.Incident) error

	// Update persists changes to an existing incident.
	Update(ctx context.Context, aggregate *incident.Incident) error

	// Get retrieves an incident by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error)

	// GetAllUnresolved retrieves incidents still open or in review, oldest
	// first. The admin triage queue.
	GetAllUnresolved(ctx context.Context) ([]*incident.Incident, error)

	// GetAllByDelivery retrieves every incident ever reported against the
	// given delivery, newest first.
	GetAllByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*incident.Incident, error)
}
