package queries

import (
	"errors"
	"time"

	"livraison/internal/pkg/guard"
)

var (
	ErrGetOverdueDeliveriesQueryIsNotConstructed = errors.New(
		"GetOverdueDeliveriesQuery must be created via NewGetOverdueDeliveriesQuery constructor",
	)
	ErrBeforeIsRequired = errors.New("before instant is required")
)

// GetOverdueDeliveriesQuery retrieves non-terminal deliveries whose
// scheduled date has passed. Used by the overdue sweep job and the board's
// late filter.
type GetOverdueDeliveriesQuery struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueDeliveriesQuery creates a query for late deliveries: those
// scheduled before the given instant and still not terminal.
func NewGetOverdueDeliveriesQuery(before time.Time) (GetOverdueDeliveriesQuery, error) {
	query := GetOverdueDeliveriesQuery{guard: guard.NewConstructorGuard()}

	if err := query.setBefore(before); err != nil {
		return GetOverdueDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

// Before returns the lateness cutoff.
func (q GetOverdueDeliveriesQuery) Before() time.Time {
	return q.before
}

func (q *GetOverdueDeliveriesQuery) setBefore(before time.Time) error {
	if before.IsZero() {
		return ErrBeforeIsRequired
	}

	q.before = before
	return nil
}
