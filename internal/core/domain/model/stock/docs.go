// Package stock contains the inventory aggregate backing the delivery
// ledger. Quantities only leave through the atomic decrement that runs
// inside the delivery-confirmation transaction.
package stock
