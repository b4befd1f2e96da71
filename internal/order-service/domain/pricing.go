package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

// Reference pricing constants.
var (
	DefaultTaxRate     = decimal.RequireFromString("0.08")
	DefaultShippingFee = decimal.RequireFromString("9.99")
)

// currencyPlaces is the number of fractional digits kept for money.
const currencyPlaces = 2

// Pricing holds the tax rate and flat shipping fee applied at creation.
type Pricing struct {
	TaxRate     decimal.Decimal
	ShippingFee decimal.Decimal
}

// DefaultPricing is 8% tax and a 9.99 flat fee.
func DefaultPricing() Pricing {
	return Pricing{TaxRate: DefaultTaxRate, ShippingFee: DefaultShippingFee}
}

// Totals are the derived monetary fields of an order.
type Totals struct {
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	ShippingCost decimal.Decimal
	TotalAmount  decimal.Decimal
}

// ComputeTotals prices items with p. See the package-level ComputeTotals.
func (p Pricing) ComputeTotals(items []LineItem) (Totals, error) {
	return ComputeTotals(items, p.TaxRate, p.ShippingFee)
}

// ComputeTotals derives subtotal, tax, shipping and total from items.
//
// Line totals are exact products; tax is subtotal × taxRate rounded half-up
// to two places; shipping is the flat fee. The input is not modified.
func ComputeTotals(items []LineItem, taxRate, shippingFee decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, apperr.Invalid("order must contain at least one item")
	}

	var problems []string
	subtotal := decimal.Zero
	for i, it := range items {
		if it.Quantity < 1 {
			problems = append(problems, fmt.Sprintf("orderItems[%d].quantity must be at least 1", i))
		}
		if !it.UnitPrice.IsPositive() {
			problems = append(problems, fmt.Sprintf("orderItems[%d].unitPrice must be greater than 0", i))
		}
		subtotal = subtotal.Add(it.Total())
	}
	if len(problems) > 0 {
		return Totals{}, apperr.Invalid(problems...)
	}

	// Round on a non-negative value: half-away-from-zero is half-up here.
	tax := subtotal.Mul(taxRate).Round(currencyPlaces)
	shipping := shippingFee.Round(currencyPlaces)

	return Totals{
		Subtotal:     subtotal,
		TaxAmount:    tax,
		ShippingCost: shipping,
		TotalAmount:  subtotal.Add(tax).Add(shipping),
	}, nil
}
