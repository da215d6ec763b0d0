package queries

import (
	"errors"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/guard"
)

var (
	ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
		"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
	)
)

// GetDriverDeliveriesQuery retrieves a driver's run: the deliveries
// committed to them, plus the unclaimed pending ones they could pick up.
type GetDriverDeliveriesQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverDeliveriesQuery creates a query for one driver's run.
func NewGetDriverDeliveriesQuery(driverID kernel.UUID) (GetDriverDeliveriesQuery, error) {
	query := GetDriverDeliveriesQuery{guard: guard.NewConstructorGuard()}

	if err := query.setDriverID(driverID); err != nil {
		return GetDriverDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver whose run to load.
func (q GetDriverDeliveriesQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverDeliveriesQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}
