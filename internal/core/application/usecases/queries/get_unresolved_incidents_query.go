package queries

import (
	"errors"
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"
)

var (
	ErrGetUnresolvedIncidentsQueryIsNotConstructed = errors.New(
		"GetUnresolvedIncidentsQuery must be created via NewGetUnresolvedIncidentsQuery constructor",
	)
)

// GetUnresolvedIncidentsQuery retrieves the admin triage queue: incidents
// still open or in review, oldest first.
type GetUnresolvedIncidentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnresolvedIncidentsQuery creates a query for the triage queue.
// Parameterless.
func NewGetUnresolvedIncidentsQuery() GetUnresolvedIncidentsQuery {
	return GetUnresolvedIncidentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnresolvedIncidentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnresolvedIncidentsQueryIsNotConstructed)
}

// UnresolvedIncidentResponse is one triage row, joined with the delivery
// reference so the admin sees which shipment is stuck.
type UnresolvedIncidentResponse struct {
	ID                kernel.UUID
	DeliveryID        kernel.UUID
	DeliveryReference string
	Type              string
	Status            string
	Description       string
	ReportedAt        time.Time
}
