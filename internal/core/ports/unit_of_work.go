package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The delivery confirmation relies on this boundary: the status
// compare-and-set and the stock decrement run in the same transaction, so a
// ledger failure rolls the status change back without compensation logic.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction started by Begin().
	DeliveryRepository() DeliveryRepository

	// StockRepository returns a StockRepository bound to the current
	// transaction started by Begin().
	StockRepository() StockRepository

	// IncidentRepository returns an IncidentRepository bound to the current
	// transaction started by Begin().
	IncidentRepository() IncidentRepository
}
