// Package queries contains read-only operations over the delivery
// coordination data. Query handlers bypass the domain aggregates and read
// projections straight from the database, the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
		"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
	)
)

// GetActiveDeliveriesQuery retrieves every delivery not yet delivered or
// cancelled: the dispatch board.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for the dispatch board.
// This is a parameterless query.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// DeliverySummaryResponse is the board's row projection: enough to triage
// without loading the aggregate.
type DeliverySummaryResponse struct {
	ID          kernel.UUID
	Reference   string
	Status      string
	Priority    string
	ClientName  string
	Address     string
	DriverName  string
	ScheduledAt time.Time
}
