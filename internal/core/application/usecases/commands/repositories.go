// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"livraison/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// IncidentRepoFactory provides access to the incident repository within a transaction.
	IncidentRepoFactory interface {
		IncidentRepository() ports.IncidentRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// StockUoW manages transactions for stock-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// IncidentUoW manages transactions for incident-only operations.
	IncidentUoW interface {
		TxManager
		IncidentRepoFactory
	}

	// IncidentUoWFactory creates new incident unit of work instances.
	IncidentUoWFactory interface {
		Create() IncidentUoW
	}

	// UoW manages transactions spanning all three aggregates. The delivery
	// transition handler needs this: a confirmed delivery touches the
	// delivery row and the stock rows, and an incident transition touches
	// the delivery row and the incident table, all inside one transaction.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		StockRepoFactory
		IncidentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
