// Package seed loads the demo orders into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/ports"
)

// SubjectID is recorded as the author of every seeded history entry.
const SubjectID = "seed"

type transition struct {
	status   domain.OrderStatus
	tracking string
	notes    string
	ago      time.Duration
}

type demo struct {
	owner       string
	draft       domain.Draft
	created     time.Duration
	transitions []transition
}

const day = 24 * time.Hour

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func demos() []demo {
	return []demo{
		{
			owner: "user123",
			draft: domain.Draft{
				CustomerName:    "John Doe",
				CustomerEmail:   "john.doe@example.com",
				ShippingAddress: "123 Main St, City, State 12345",
				BillingAddress:  "123 Main St, City, State 12345",
				PaymentMethod:   "Credit Card",
				Items: []domain.DraftItem{
					{ProductID: 1, ProductName: "Laptop Pro 15", SKU: "LP15-001", Quantity: 1, UnitPrice: price("1299.99"), ImageURL: "/images/laptop-pro-15.jpg"},
					{ProductID: 3, ProductName: "USB-C Hub", SKU: "USBC-003", Quantity: 1, UnitPrice: price("79.99"), ImageURL: "/images/usb-c-hub.jpg"},
					{ProductID: 2, ProductName: "Wireless Mouse", SKU: "WM-002", Quantity: 1, UnitPrice: price("49.99"), ImageURL: "/images/wireless-mouse.jpg"},
				},
			},
			created: 7 * day,
			transitions: []transition{
				{status: domain.StatusShipped, tracking: "TRK123456789", ago: 5 * day},
				{status: domain.StatusDelivered, notes: "Delivered successfully", ago: 2 * day},
			},
		},
		{
			owner: "user456",
			draft: domain.Draft{
				CustomerName:    "Jane Smith",
				CustomerEmail:   "jane.smith@example.com",
				ShippingAddress: "456 Oak Ave, Town, State 67890",
				BillingAddress:  "456 Oak Ave, Town, State 67890",
				PaymentMethod:   "PayPal",
				Notes:           "Express shipping requested",
				Items: []domain.DraftItem{
					{ProductID: 2, ProductName: "Wireless Mouse", SKU: "WM-002", Quantity: 2, UnitPrice: price("49.99"), ImageURL: "/images/wireless-mouse.jpg"},
				},
			},
			created: 2 * day,
			transitions: []transition{
				{status: domain.StatusProcessing, ago: day},
			},
		},
	}
}

// Run inserts the demo orders, priced with pricing and backdated from now.
// It does nothing when the store already holds orders, and reports how many
// orders it created.
func Run(ctx context.Context, repo ports.OrderRepository, pricing domain.Pricing, now time.Time) (int, error) {
	n, err := repo.Count(ctx, ports.Filter{})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.InfoContext(ctx, "store already seeded", "orders", n)
		return 0, nil
	}

	created := 0
	for _, d := range demos() {
		at := now.Add(-d.created)
		order, err := domain.NewOrder(d.draft, d.owner, pricing, at)
		if err != nil {
			return created, fmt.Errorf("seed: build order for %s: %w", d.owner, err)
		}
		entry, err := history.NewEntry(ctx, history.ActionCreated, order.ID, "", order.Status.String(), SubjectID, nil, at)
		if err != nil {
			return created, err
		}
		if err := repo.Create(ctx, order, entry); err != nil {
			return created, fmt.Errorf("seed: create order for %s: %w", d.owner, err)
		}

		for _, tr := range d.transitions {
			when := now.Add(-tr.ago)
			_, err := repo.Mutate(ctx, order.ID, "", func(o *domain.Order) (*history.Entry, error) {
				from := o.Status
				if err := o.SetStatus(tr.status, tr.tracking, tr.notes, when); err != nil {
					return nil, err
				}
				return history.NewEntry(ctx, history.ActionStatusUpdated, o.ID, from.String(), o.Status.String(), SubjectID, nil, when)
			})
			if err != nil {
				return created, fmt.Errorf("seed: move %s to %s: %w", order.ID, tr.status, err)
			}
		}

		slog.InfoContext(ctx, "seeded order", "order_id", order.ID, "owner", d.owner, "total", order.TotalAmount.StringFixed(2))
		created++
	}
	return created, nil
}
