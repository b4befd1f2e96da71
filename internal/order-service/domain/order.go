package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the order record. Identity, ownership, customer details and the
// priced line items are fixed at creation; only the lifecycle methods in
// lifecycle.go change it afterwards.
type Order struct {
	ID      string
	OwnerID string

	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	BillingAddress  string

	Items []LineItem

	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	ShippingCost decimal.Decimal
	TotalAmount  decimal.Decimal

	Status           OrderStatus
	PaymentMethod    string
	PaymentReference string
	TrackingNumber   string
	Notes            string

	ShippedDate   *time.Time
	DeliveredDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineItem is a price snapshot of one product at the time of ordering.
type LineItem struct {
	ProductID   int64
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	ImageURL    string
}

// Total is quantity × unit price, computed exactly.
func (i LineItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Summary is the list view of an order.
type Summary struct {
	ID            string
	OwnerID       string
	CustomerName  string
	CustomerEmail string
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	CreatedAt     time.Time
	ItemCount     int
}

// Summary projects the order onto its list view.
func (o *Order) Summary() Summary {
	return Summary{
		ID:            o.ID,
		OwnerID:       o.OwnerID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		ItemCount:     len(o.Items),
	}
}

// Draft is a create-order request as supplied by the caller. It carries no
// owner and no monetary totals: both are decided by NewOrder.
type Draft struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
	Notes           string
	Items           []DraftItem
}

// DraftItem is one requested line.
type DraftItem struct {
	ProductID   int64
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
	ImageURL    string
}

// NewOrder validates draft, prices it once and returns a Pending order owned
// by ownerID. now is the creation timestamp.
func NewOrder(draft Draft, ownerID string, pricing Pricing, now time.Time) (*Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	items := make([]LineItem, len(draft.Items))
	for i, d := range draft.Items {
		items[i] = LineItem{
			ProductID:   d.ProductID,
			ProductName: strings.TrimSpace(d.ProductName),
			SKU:         strings.TrimSpace(d.SKU),
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			ImageURL:    strings.TrimSpace(d.ImageURL),
		}
		items[i].LineTotal = items[i].Total()
	}

	totals, err := pricing.ComputeTotals(items)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Order{
		ID:               uuid.NewString(),
		OwnerID:          ownerID,
		CustomerName:     strings.TrimSpace(draft.CustomerName),
		CustomerEmail:    strings.TrimSpace(draft.CustomerEmail),
		ShippingAddress:  strings.TrimSpace(draft.ShippingAddress),
		BillingAddress:   strings.TrimSpace(draft.BillingAddress),
		Items:            items,
		Subtotal:         totals.Subtotal,
		TaxAmount:        totals.TaxAmount,
		ShippingCost:     totals.ShippingCost,
		TotalAmount:      totals.TotalAmount,
		Status:           StatusPending,
		PaymentMethod:    strings.TrimSpace(draft.PaymentMethod),
		PaymentReference: NewPaymentReference(now),
		Notes:            strings.TrimSpace(draft.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// NewPaymentReference returns "PAY-YYYYMMDD-XXXXXXXX" with eight random
// upper-case hex characters.
func NewPaymentReference(now time.Time) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("PAY-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(raw[:8]))
}

// CheckInvariants verifies the derived-field and date invariants. Stores call
// it before persisting so a corrupted record is never written.
func (o *Order) CheckInvariants() error {
	sum := decimal.Zero
	for _, it := range o.Items {
		if !it.LineTotal.Equal(it.Total()) {
			return fmt.Errorf("domain: order %s: line total %s != %d x %s", o.ID, it.LineTotal, it.Quantity, it.UnitPrice)
		}
		sum = sum.Add(it.LineTotal)
	}
	if !o.Subtotal.Equal(sum) {
		return fmt.Errorf("domain: order %s: subtotal %s != sum of lines %s", o.ID, o.Subtotal, sum)
	}
	if want := o.Subtotal.Add(o.TaxAmount).Add(o.ShippingCost); !o.TotalAmount.Equal(want) {
		return fmt.Errorf("domain: order %s: total %s != %s", o.ID, o.TotalAmount, want)
	}
	if o.ShippedDate != nil && o.DeliveredDate != nil && o.ShippedDate.After(*o.DeliveredDate) {
		return fmt.Errorf("domain: order %s: shipped after delivered", o.ID)
	}
	if !o.Status.Valid() {
		return fmt.Errorf("domain: order %s: invalid status %d", o.ID, int(o.Status))
	}
	return nil
}
