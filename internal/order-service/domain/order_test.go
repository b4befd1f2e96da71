package domain

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func validDraft() Draft {
	return Draft{
		CustomerName:    "John Doe",
		CustomerEmail:   "john.doe@example.com",
		ShippingAddress: "123 Main St, Springfield",
		PaymentMethod:   "Credit Card",
		Items: []DraftItem{
			{ProductID: 1, ProductName: "Laptop", SKU: "LAP-001", Quantity: 1, UnitPrice: dec("1299.99")},
			{ProductID: 2, ProductName: "USB-C Hub", SKU: "HUB-001", Quantity: 1, UnitPrice: dec("79.99")},
		},
	}
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(validDraft(), "user123", DefaultPricing(), testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "user123", o.OwnerID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, testNow, o.CreatedAt)
	assert.Equal(t, testNow, o.UpdatedAt)
	assert.Nil(t, o.ShippedDate)
	assert.Nil(t, o.DeliveredDate)
	assert.True(t, dec("1379.98").Equal(o.Subtotal))
	assert.True(t, dec("110.40").Equal(o.TaxAmount))
	assert.True(t, dec("1500.37").Equal(o.TotalAmount))
	assert.True(t, dec("1299.99").Equal(o.Items[0].LineTotal))
	assert.Regexp(t, regexp.MustCompile(`^PAY-20240315-[0-9A-F]{8}$`), o.PaymentReference)
	assert.NoError(t, o.CheckInvariants())
}

func TestNewOrder_UniqueIDs(t *testing.T) {
	a, err := NewOrder(validDraft(), "u", DefaultPricing(), testNow)
	require.NoError(t, err)
	b, err := NewOrder(validDraft(), "u", DefaultPricing(), testNow)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Draft)
		problem string
	}{
		{"missing name", func(d *Draft) { d.CustomerName = " " }, "customerName is required"},
		{"long name", func(d *Draft) { d.CustomerName = strings.Repeat("a", 101) }, "customerName must be at most 100 characters"},
		{"bad email", func(d *Draft) { d.CustomerEmail = "not-an-email" }, "customerEmail must be a valid email address"},
		{"display name email", func(d *Draft) { d.CustomerEmail = "John <john@example.com>" }, "customerEmail must be a valid email address"},
		{"missing shipping", func(d *Draft) { d.ShippingAddress = "" }, "shippingAddress is required"},
		{"missing payment", func(d *Draft) { d.PaymentMethod = "" }, "paymentMethod is required"},
		{"long notes", func(d *Draft) { d.Notes = strings.Repeat("n", 1001) }, "notes must be at most 1000 characters"},
		{"no items", func(d *Draft) { d.Items = nil }, "order must contain at least one item"},
		{"bad product id", func(d *Draft) { d.Items[0].ProductID = 0 }, "orderItems[0].productId must be a positive id"},
		{"zero quantity", func(d *Draft) { d.Items[1].Quantity = 0 }, "orderItems[1].quantity must be at least 1"},
		{"oversized quantity", func(d *Draft) { d.Items[0].Quantity = MaxQuantity + 1 }, "orderItems[0].quantity must be at most 2147483647"},
		{"negative price", func(d *Draft) { d.Items[0].UnitPrice = dec("-5") }, "orderItems[0].unitPrice must be greater than 0"},
		{"sub-cent price", func(d *Draft) { d.Items[0].UnitPrice = dec("1.005") }, "orderItems[0].unitPrice must have at most 2 decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := d.Validate()
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, apperr.Problems(err), tt.problem)
		})
	}
}

func TestDraftValidate_CollectsAllProblems(t *testing.T) {
	err := Draft{}.Validate()
	require.Error(t, err)
	assert.GreaterOrEqual(t, len(apperr.Problems(err)), 5)
}

func TestDraftValidate_TrailingZeroPrice(t *testing.T) {
	d := validDraft()
	d.Items[0].UnitPrice = dec("10.500")
	assert.NoError(t, d.Validate())
}

func TestCheckInvariants_DetectsTampering(t *testing.T) {
	o, err := NewOrder(validDraft(), "u", DefaultPricing(), testNow)
	require.NoError(t, err)

	o.TotalAmount = o.TotalAmount.Add(dec("0.01"))
	assert.Error(t, o.CheckInvariants())
}

func TestSummary(t *testing.T) {
	o, err := NewOrder(validDraft(), "u", DefaultPricing(), testNow)
	require.NoError(t, err)

	s := o.Summary()
	assert.Equal(t, o.ID, s.ID)
	assert.Equal(t, 2, s.ItemCount)
	assert.True(t, o.TotalAmount.Equal(s.TotalAmount))
}
