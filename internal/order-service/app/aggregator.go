package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/ports"
)

// Revenue is the result of a revenue query.
type Revenue struct {
	Total  decimal.Decimal
	Orders int
}

// Aggregator computes order analytics. It does no authorization; callers
// gate it. Reads are not synchronised with in-flight mutations.
type Aggregator struct {
	repo ports.OrderRepository
}

func NewAggregator(repo ports.OrderRepository) *Aggregator {
	return &Aggregator{repo: repo}
}

// TotalRevenue sums the totals of shipped and delivered orders created in w.
// Summation happens here in decimal arithmetic; the store only filters. A
// window whose start is after its end matches nothing.
func (a *Aggregator) TotalRevenue(ctx context.Context, w domain.DateWindow) (Revenue, error) {
	if w.Empty() {
		return Revenue{Total: decimal.Zero}, nil
	}
	orders, err := a.repo.Summaries(ctx, ports.Filter{Statuses: domain.RevenueStatuses(), Window: w})
	if err != nil {
		return Revenue{}, err
	}
	counted := 0
	for _, o := range orders {
		if o.Status.CountsAsRevenue() && w.Contains(o.CreatedAt) {
			counted++
		}
	}
	return Revenue{Total: domain.Revenue(orders, w), Orders: counted}, nil
}

// TotalCount counts all orders created in w, whatever their status.
func (a *Aggregator) TotalCount(ctx context.Context, w domain.DateWindow) (int, error) {
	if w.Empty() {
		return 0, nil
	}
	return a.repo.Count(ctx, ports.Filter{Window: w})
}
