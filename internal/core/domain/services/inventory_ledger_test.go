package services_test

import (
	"testing"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name string, qty int, stockID *kernel.UUID) delivery.Item {
	t.Helper()
	item, err := delivery.NewItem(name, "SKU-X", qty, "pcs", decimal.Zero, stockID)
	require.NoError(t, err)
	return item
}

func TestInventoryLedger_DemandFor(t *testing.T) {
	ledger := services.NewInventoryLedger()

	t.Run("should merge line items by stock id", func(t *testing.T) {
		laptops := kernel.NewUUID()
		mice := kernel.NewUUID()

		demands := ledger.DemandFor([]delivery.Item{
			newItem(t, "Laptop Pro 15", 2, &laptops),
			newItem(t, "Wireless Mouse", 5, &mice),
			newItem(t, "Laptop Pro 15 (gift)", 1, &laptops),
		})

		require.Len(t, demands, 2)
		assert.True(t, laptops.IsEqual(demands[0].StockID))
		assert.Equal(t, 3, demands[0].Qty)
		assert.True(t, mice.IsEqual(demands[1].StockID))
		assert.Equal(t, 5, demands[1].Qty)
	})

	t.Run("should skip items without stock linkage", func(t *testing.T) {
		laptops := kernel.NewUUID()

		demands := ledger.DemandFor([]delivery.Item{
			newItem(t, "Setup service", 1, nil),
			newItem(t, "Laptop Pro 15", 2, &laptops),
		})

		require.Len(t, demands, 1)
		assert.True(t, laptops.IsEqual(demands[0].StockID))
	})

	t.Run("should produce no demand for empty deliveries", func(t *testing.T) {
		assert.Empty(t, ledger.DemandFor(nil))
		assert.Empty(t, ledger.DemandFor([]delivery.Item{newItem(t, "Setup service", 1, nil)}))
	})
}

func TestInventoryLedger_LowStockAlerts(t *testing.T) {
	ledger := services.NewInventoryLedger()

	t.Run("should alert only on threshold crossing", func(t *testing.T) {
		crossed := services.Movement{StockID: kernel.NewUUID(), Name: "Laptop Pro 15",
			Requested: 3, Previous: 5, Remaining: 2, MinQuantity: 3}
		alreadyLow := services.Movement{StockID: kernel.NewUUID(), Name: "Wireless Mouse",
			Requested: 1, Previous: 2, Remaining: 1, MinQuantity: 3}
		comfortable := services.Movement{StockID: kernel.NewUUID(), Name: "USB Cable",
			Requested: 10, Previous: 100, Remaining: 90, MinQuantity: 20}

		alerts := ledger.LowStockAlerts([]services.Movement{crossed, alreadyLow, comfortable})

		require.Len(t, alerts, 1)
		assert.Equal(t, "Laptop Pro 15", alerts[0].Name)
	})

	t.Run("landing exactly on the threshold does not alert", func(t *testing.T) {
		m := services.Movement{Previous: 5, Remaining: 3, MinQuantity: 3}
		assert.Empty(t, ledger.LowStockAlerts([]services.Movement{m}))
	})
}

func TestMovement_Clamped(t *testing.T) {
	assert.True(t, services.Movement{Requested: 5, Previous: 2, Remaining: 0}.Clamped())
	assert.False(t, services.Movement{Requested: 2, Previous: 5, Remaining: 3}.Clamped())
	assert.False(t, services.Movement{Requested: 5, Previous: 5, Remaining: 0}.Clamped())
}
