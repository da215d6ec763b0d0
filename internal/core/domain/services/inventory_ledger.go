package services

import (
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
)

// Demand is one merged decrement against a stock item: the total quantity a
// confirmed delivery takes out of it across all line items.
type Demand struct {
	StockID kernel.UUID
	Qty     int
}

// Movement is the ledger's account of one applied decrement, as reported by
// the storage layer from inside the confirmation transaction.
type Movement struct {
	StockID     kernel.UUID
	Name        string
	Reference   string
	Requested   int
	Previous    int
	Remaining   int
	MinQuantity int
}

// Clamped reports whether the stock could not cover the full demand and the
// quantity was floored at zero.
func (m Movement) Clamped() bool {
	return m.Previous < m.Requested
}

// CrossedLowStock reports whether this movement took the item below its
// reorder threshold. Items already below the threshold before the movement
// do not alert again.
func (m Movement) CrossedLowStock() bool {
	return m.Remaining < m.MinQuantity && m.Previous >= m.MinQuantity
}

// InventoryLedger is the domain service translating a confirmed delivery
// into stock decrements. It merges line items by stock id so each item is
// decremented exactly once per delivery, and it decides which movements
// warrant a low-stock alert.
//
// The ledger never touches storage itself: the coordinator hands its merged
// demand to the stock repository inside the same transaction that flips the
// delivery to delivered, so a failed decrement rolls the status change back.
type InventoryLedger struct{}

// NewInventoryLedger creates a new InventoryLedger instance.
func NewInventoryLedger() InventoryLedger {
	return InventoryLedger{}
}

// DemandFor merges the delivery's line items into one demand per stock
// item, preserving first-seen order. Items without stock linkage are
// service lines and produce no demand.
func (l InventoryLedger) DemandFor(items []delivery.Item) []Demand {
	var demands []Demand
	index := make(map[kernel.UUID]int)

	for _, item := range items {
		stockID := item.StockID()
		if stockID == nil {
			continue
		}
		if i, ok := index[*stockID]; ok {
			demands[i].Qty += item.Qty()
			continue
		}
		index[*stockID] = len(demands)
		demands = append(demands, Demand{StockID: *stockID, Qty: item.Qty()})
	}

	return demands
}

// LowStockAlerts filters the movements that crossed the reorder threshold.
func (l InventoryLedger) LowStockAlerts(movements []Movement) []Movement {
	var alerts []Movement
	for _, m := range movements {
		if m.CrossedLowStock() {
			alerts = append(alerts, m)
		}
	}
	return alerts
}
