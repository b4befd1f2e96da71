package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/domain/entity"
)

// OrderService is the gateway's view of the order service. The caller's
// identity, request id and idempotency key travel in ctx. Errors are
// classified with the apperr sentinels.
type OrderService interface {
	CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.OrderSummary, error)
	ListMyOrders(ctx context.Context) ([]entity.OrderSummary, error)
	ListByStatus(ctx context.Context, status string) ([]entity.OrderSummary, error)
	UpdateStatus(ctx context.Context, id string, upd entity.StatusUpdate) (*entity.Order, error)
	CancelOrder(ctx context.Context, id string) (*entity.Order, error)
	TotalRevenue(ctx context.Context, r entity.DateRange) (decimal.Decimal, error)
	TotalCount(ctx context.Context, r entity.DateRange) (int64, error)
	History(ctx context.Context, id string) ([]entity.HistoryEntry, error)
}
