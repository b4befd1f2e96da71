package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

// OrderStatus is the closed set of order states. The numeric values are part
// of the external contract: clients may address a status by number.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusConfirmed
	StatusProcessing
	StatusShipped
	StatusDelivered
	StatusCancelled
	StatusRefunded
)

var statusNames = [...]string{
	StatusPending:    "Pending",
	StatusConfirmed:  "Confirmed",
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
	StatusRefunded:   "Refunded",
}

// Statuses lists every status in declaration order.
func Statuses() []OrderStatus {
	out := make([]OrderStatus, len(statusNames))
	for i := range statusNames {
		out[i] = OrderStatus(i)
	}
	return out
}

// Valid reports whether s is one of the declared statuses.
func (s OrderStatus) Valid() bool {
	return s >= StatusPending && int(s) < len(statusNames)
}

func (s OrderStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("OrderStatus(%d)", int(s))
	}
	return statusNames[s]
}

// ParseStatus accepts a status name (any case) or its numeric value.
func ParseStatus(raw string) (OrderStatus, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		if s := OrderStatus(n); s.Valid() {
			return s, nil
		}
		return 0, apperr.Invalid(fmt.Sprintf("unknown order status %q", raw))
	}
	for i, name := range statusNames {
		if strings.EqualFold(name, raw) {
			return OrderStatus(i), nil
		}
	}
	return 0, apperr.Invalid(fmt.Sprintf("unknown order status %q", raw))
}

// MarshalText encodes the status by name.
func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("domain: invalid order status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name or number.
func (s *OrderStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// revenueStatuses are the states whose totals count as realised revenue.
var revenueStatuses = []OrderStatus{StatusShipped, StatusDelivered}

// RevenueStatuses returns the states counted by revenue analytics.
func RevenueStatuses() []OrderStatus {
	return append([]OrderStatus(nil), revenueStatuses...)
}

// CountsAsRevenue reports whether an order in status s contributes revenue.
func (s OrderStatus) CountsAsRevenue() bool {
	return s == StatusShipped || s == StatusDelivered
}

// Cancellable reports whether the owner may still cancel an order in s.
func (s OrderStatus) Cancellable() bool {
	return s != StatusShipped && s != StatusDelivered
}
