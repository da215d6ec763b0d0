package delivery_test

import (
	"testing"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item linked to stock", func(t *testing.T) {
		stockID := kernel.NewUUID()

		item, err := delivery.NewItem("Laptop Pro 15", "SKU-001", 2, "pcs", decimal.NewFromInt(1200), &stockID)

		require.NoError(t, err)
		assert.Equal(t, "Laptop Pro 15", item.Name())
		assert.Equal(t, "SKU-001", item.Reference())
		assert.Equal(t, 2, item.Qty())
		assert.Equal(t, "pcs", item.Unit())
		assert.True(t, decimal.NewFromInt(1200).Equal(item.UnitPrice()))
		require.NotNil(t, item.StockID())
		assert.True(t, stockID.IsEqual(*item.StockID()))
	})

	t.Run("should create item without stock linkage", func(t *testing.T) {
		item, err := delivery.NewItem("Gift wrap", "", 1, "pcs", decimal.Zero, nil)
		require.NoError(t, err)
		assert.Nil(t, item.StockID())
	})

	t.Run("should fail on invalid arguments", func(t *testing.T) {
		tests := map[string]struct {
			name      string
			qty       int
			unit      string
			unitPrice decimal.Decimal
		}{
			"empty name":     {name: "", qty: 1, unit: "pcs", unitPrice: decimal.Zero},
			"zero qty":       {name: "Laptop", qty: 0, unit: "pcs", unitPrice: decimal.Zero},
			"negative qty":   {name: "Laptop", qty: -3, unit: "pcs", unitPrice: decimal.Zero},
			"huge qty":       {name: "Laptop", qty: 1_000_000, unit: "pcs", unitPrice: decimal.Zero},
			"empty unit":     {name: "Laptop", qty: 1, unit: "", unitPrice: decimal.Zero},
			"negative price": {name: "Laptop", qty: 1, unit: "pcs", unitPrice: decimal.NewFromInt(-5)},
		}

		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := delivery.NewItem(tc.name, "SKU-001", tc.qty, tc.unit, tc.unitPrice, nil)
				require.Error(t, err)
			})
		}
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should reject zero value item", func(t *testing.T) {
		var item delivery.Item
		require.ErrorIs(t, item.Validate(), delivery.ErrItemIsNotConstructed)
	})
}
