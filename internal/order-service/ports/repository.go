// Package ports declares the storage port of the order service. The app
// layer depends on this abstraction, not on SQLite directly, so tests and
// other engines can supply their own implementation.
package ports

import (
	"context"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
)

// Filter narrows summary and count queries. Zero values mean "no filter".
type Filter struct {
	// OwnerID restricts results to orders created by this subject.
	OwnerID string

	// Statuses restricts results to the listed states.
	Statuses []domain.OrderStatus

	// Window bounds CreatedAt, inclusively.
	Window domain.DateWindow
}

// MutateFunc changes order in place and returns the history entry describing
// the change. Returning an error aborts the transaction.
type MutateFunc func(order *domain.Order) (*history.Entry, error)

// OrderRepository persists orders and their history. There is deliberately
// no delete operation: orders are never removed.
type OrderRepository interface {
	// Create inserts a new order together with its creation entry.
	Create(ctx context.Context, order *domain.Order, entry *history.Entry) error

	// Get loads one order. When ownerID is non-empty the lookup is filtered
	// by owner, and a mismatch is indistinguishable from a missing id:
	// both return apperr.ErrOrderNotFound.
	Get(ctx context.Context, id, ownerID string) (*domain.Order, error)

	// Summaries lists matching orders, newest first.
	Summaries(ctx context.Context, f Filter) ([]domain.Summary, error)

	// Count counts matching orders.
	Count(ctx context.Context, f Filter) (int, error)

	// Mutate loads the order (owner-filtered like Get), applies fn and stores
	// the result and the returned entry in one atomic transaction. Concurrent
	// mutations of the same order are serialised.
	Mutate(ctx context.Context, id, ownerID string, fn MutateFunc) (*domain.Order, error)

	// History lists the entries recorded for an order, oldest first.
	History(ctx context.Context, orderID string) ([]history.Entry, error)
}
