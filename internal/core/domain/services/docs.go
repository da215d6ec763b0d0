// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the delivery coordination
// system. It implements rules that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - AccessGuard: role-scoped authorization for delivery, stock and
//     incident operations
//   - InventoryLedger: translation of confirmed deliveries into merged
//     stock decrements and low-stock alerts
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
