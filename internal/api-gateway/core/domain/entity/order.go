package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ProductID   int64
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	ImageURL    string
}

type Order struct {
	ID               string
	OwnerID          string
	CustomerName     string
	CustomerEmail    string
	ShippingAddress  string
	BillingAddress   string
	Items            []OrderItem
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	ShippingCost     decimal.Decimal
	TotalAmount      decimal.Decimal
	Status           string
	PaymentMethod    string
	PaymentReference string
	TrackingNumber   string
	Notes            string
	ShippedDate      *time.Time
	DeliveredDate    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderSummary struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	TotalAmount   decimal.Decimal
	Status        string
	CreatedAt     time.Time
	ItemCount     int
}

// NewOrder is a create request as received from the client. Totals and owner
// are decided by the order service.
type NewOrder struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
	Notes           string
	Items           []OrderItem
}

type StatusUpdate struct {
	Status         string
	TrackingNumber string
	Notes          string
}

// DateRange bounds analytics by creation time; nil bounds are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

type HistoryEntry struct {
	EventID     string
	Action      string
	FromStatus  string
	ToStatus    string
	SubjectID   string
	TraceID     string
	CreatedAt   time.Time
	PublishedAt *time.Time
}
