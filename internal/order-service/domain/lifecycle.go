package domain

import (
	"strings"
	"time"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

// backfillShipped is how far before delivery a missing ship date is placed.
const backfillShipped = 24 * time.Hour

// ErrNotCancellable is returned by Cancel for shipped or delivered orders.
var ErrNotCancellable = &apperr.ConflictError{Reason: "Cannot cancel shipped or delivered orders"}

// SetStatus overwrites the status. Any status may follow any other; the
// fulfilment dates are maintained so that shipped never follows delivered.
// Empty tracking or notes leave the stored values in place.
func (o *Order) SetStatus(status OrderStatus, tracking, notes string, now time.Time) error {
	if !status.Valid() {
		return apperr.Invalid("unknown order status")
	}
	now = now.UTC()

	o.Status = status
	switch status {
	case StatusShipped:
		if o.ShippedDate == nil {
			o.ShippedDate = timePtr(now)
		}
	case StatusDelivered:
		o.DeliveredDate = timePtr(now)
		if o.ShippedDate == nil {
			o.ShippedDate = timePtr(now.Add(-backfillShipped))
		} else if o.ShippedDate.After(now) {
			o.ShippedDate = timePtr(now)
		}
	}

	if t := strings.TrimSpace(tracking); t != "" {
		o.TrackingNumber = t
	}
	if n := strings.TrimSpace(notes); n != "" {
		o.Notes = n
	}
	o.UpdatedAt = now
	return nil
}

// Cancel moves the order to Cancelled unless it has already shipped.
func (o *Order) Cancel(now time.Time) error {
	if !o.Status.Cancellable() {
		return ErrNotCancellable
	}
	o.Status = StatusCancelled
	o.UpdatedAt = now.UTC()
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }
