package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(qty int, price string) LineItem {
	it := LineItem{ProductID: 1, ProductName: "p", Quantity: qty, UnitPrice: dec(price)}
	it.LineTotal = it.Total()
	return it
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		subtotal string
		tax      string
		total    string
	}{
		{
			name:     "laptop and hub",
			items:    []LineItem{line(1, "1299.99"), line(1, "79.99")},
			subtotal: "1379.98",
			tax:      "110.40",
			total:    "1500.37",
		},
		{
			name:     "two mice",
			items:    []LineItem{line(2, "49.99")},
			subtotal: "99.98",
			tax:      "8.00",
			total:    "117.97",
		},
		{
			name:     "half cent rounds up",
			items:    []LineItem{line(1, "0.0625")},
			subtotal: "0.0625",
			tax:      "0.01",
			total:    "10.0625",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotals(tt.items, DefaultTaxRate, DefaultShippingFee)
			require.NoError(t, err)
			assert.True(t, dec(tt.subtotal).Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, dec(tt.tax).Equal(got.TaxAmount), "tax %s", got.TaxAmount)
			assert.True(t, dec("9.99").Equal(got.ShippingCost))
			assert.True(t, dec(tt.total).Equal(got.TotalAmount), "total %s", got.TotalAmount)
		})
	}
}

func TestComputeTotals_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
	}{
		{"empty", nil},
		{"zero quantity", []LineItem{line(0, "10")}},
		{"zero price", []LineItem{line(1, "0")}},
		{"negative price", []LineItem{line(1, "-1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.items, DefaultTaxRate, DefaultShippingFee)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestComputeTotals_DoesNotModifyInput(t *testing.T) {
	items := []LineItem{line(3, "2.50")}
	before := items[0]

	_, err := DefaultPricing().ComputeTotals(items)
	require.NoError(t, err)
	assert.Equal(t, before, items[0])
}

func TestComputeTotals_CustomPricing(t *testing.T) {
	p := Pricing{TaxRate: dec("0"), ShippingFee: dec("0")}
	got, err := p.ComputeTotals([]LineItem{line(4, "5.25")})
	require.NoError(t, err)
	assert.True(t, dec("21").Equal(got.TotalAmount))
}
