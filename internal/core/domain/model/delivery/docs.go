// Package delivery contains the Delivery aggregate and its value objects.
// The aggregate owns the delivery lifecycle state machine: pending,
// assigned, in_transit, delivered, incident, cancelled. Every transition is
// validated here (legal predecessor, required payload, exactly-once
// timestamps), so no caller can put a delivery into an inconsistent state.
//
// Authorization (who may request a transition) is the access guard's
// domain service concern; stock accounting on completion is the inventory
// ledger's. Both run in the coordinator around calls into this package.
package delivery
