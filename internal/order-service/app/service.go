package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/ports"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
)

// Service is the order core: every operation authorizes the caller, applies
// the lifecycle rules and persists through the repository.
type Service struct {
	repo       ports.OrderRepository
	aggregator *Aggregator
	pricing    domain.Pricing

	cache          cache.Cache
	idempotencyTTL time.Duration

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables idempotent creates keyed by the caller's idempotency key.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.idempotencyTTL = ttl
	}
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger overrides slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(repo ports.OrderRepository, pricing domain.Pricing, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		aggregator:     NewAggregator(repo),
		pricing:        pricing,
		idempotencyTTL: 24 * time.Hour,
		now:            time.Now,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateStatus is the admin status change request.
type UpdateStatus struct {
	Status         domain.OrderStatus
	TrackingNumber string
	Notes          string
}

type createdEvent struct {
	OwnerID          string `json:"ownerId"`
	TotalAmount      string `json:"totalAmount"`
	ItemCount        int    `json:"itemCount"`
	PaymentReference string `json:"paymentReference"`
}

type statusEvent struct {
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// CreateOrder prices draft and stores it as a Pending order owned by the
// caller. With a cache configured, a repeated idempotency key returns the
// order created by the first request.
func (s *Service) CreateOrder(ctx context.Context, who identity.Identity, draft domain.Draft) (*domain.Order, error) {
	if d := domain.Authorize(who, domain.OpCreateOrder, nil); !d.Allowed {
		return nil, d.Err
	}

	if existing := s.replay(ctx, who); existing != nil {
		return existing, nil
	}

	order, err := domain.NewOrder(draft, who.SubjectID, s.pricing, s.now())
	if err != nil {
		return nil, err
	}

	entry, err := history.NewEntry(ctx, history.ActionCreated, order.ID, "", order.Status.String(), who.SubjectID,
		createdEvent{
			OwnerID:          order.OwnerID,
			TotalAmount:      order.TotalAmount.StringFixed(2),
			ItemCount:        len(order.Items),
			PaymentReference: order.PaymentReference,
		}, order.CreatedAt)
	if err != nil {
		return nil, s.internal(ctx, "create order", err)
	}

	if err := s.repo.Create(ctx, order, entry); err != nil {
		return nil, s.internal(ctx, "create order", err)
	}
	s.remember(ctx, who, order.ID)

	s.logger.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"subject_id", who.SubjectID,
		"total", order.TotalAmount.StringFixed(2),
		"items", len(order.Items),
	)
	return order, nil
}

// GetOrder returns one order. Non-admins only see their own orders; anything
// else is reported as not found.
func (s *Service) GetOrder(ctx context.Context, who identity.Identity, id string) (*domain.Order, error) {
	if d := domain.Authorize(who, domain.OpGetOrder, nil); !d.Allowed {
		return nil, d.Err
	}
	order, err := s.repo.Get(ctx, id, domain.Visibility(who))
	if err != nil {
		return nil, s.internal(ctx, "get order", err)
	}
	return order, nil
}

// ListOrders lists every order for admins and the caller's own otherwise.
func (s *Service) ListOrders(ctx context.Context, who identity.Identity) ([]domain.Summary, error) {
	if d := domain.Authorize(who, domain.OpListOrders, nil); !d.Allowed {
		return nil, d.Err
	}
	return s.summaries(ctx, "list orders", ports.Filter{OwnerID: domain.Visibility(who)})
}

// ListMyOrders lists the caller's own orders regardless of role.
func (s *Service) ListMyOrders(ctx context.Context, who identity.Identity) ([]domain.Summary, error) {
	if d := domain.Authorize(who, domain.OpListMyOrders, nil); !d.Allowed {
		return nil, d.Err
	}
	return s.summaries(ctx, "list my orders", ports.Filter{OwnerID: who.SubjectID})
}

// ListByStatus lists orders in status. Admin only.
func (s *Service) ListByStatus(ctx context.Context, who identity.Identity, status domain.OrderStatus) ([]domain.Summary, error) {
	if d := domain.Authorize(who, domain.OpListByStatus, nil); !d.Allowed {
		return nil, d.Err
	}
	if !status.Valid() {
		return nil, apperr.Invalid("unknown order status")
	}
	return s.summaries(ctx, "list by status", ports.Filter{Statuses: []domain.OrderStatus{status}})
}

// UpdateStatus sets the status of any order. Admin only.
func (s *Service) UpdateStatus(ctx context.Context, who identity.Identity, id string, req UpdateStatus) (*domain.Order, error) {
	if d := domain.Authorize(who, domain.OpUpdateStatus, nil); !d.Allowed {
		return nil, d.Err
	}
	if !req.Status.Valid() {
		return nil, apperr.Invalid("unknown order status")
	}

	now := s.now()
	order, err := s.repo.Mutate(ctx, id, "", func(o *domain.Order) (*history.Entry, error) {
		from := o.Status
		if err := o.SetStatus(req.Status, req.TrackingNumber, req.Notes, now); err != nil {
			return nil, err
		}
		return history.NewEntry(ctx, history.ActionStatusUpdated, o.ID, from.String(), o.Status.String(), who.SubjectID,
			statusEvent{TrackingNumber: o.TrackingNumber, Notes: req.Notes}, now)
	})
	if err != nil {
		return nil, s.internal(ctx, "update status", err)
	}

	s.logger.InfoContext(ctx, "order status updated",
		"order_id", order.ID,
		"subject_id", who.SubjectID,
		"status", order.Status.String(),
	)
	return order, nil
}

// CancelOrder cancels one of the caller's own orders. Shipped and delivered
// orders cannot be cancelled.
func (s *Service) CancelOrder(ctx context.Context, who identity.Identity, id string) (*domain.Order, error) {
	if d := domain.Authorize(who, domain.OpCancelOrder, nil); !d.Allowed {
		return nil, d.Err
	}

	now := s.now()
	order, err := s.repo.Mutate(ctx, id, domain.CancelScope(who), func(o *domain.Order) (*history.Entry, error) {
		if d := domain.Authorize(who, domain.OpCancelOrder, o); !d.Allowed {
			return nil, d.Err
		}
		from := o.Status
		if err := o.Cancel(now); err != nil {
			return nil, err
		}
		return history.NewEntry(ctx, history.ActionCancelled, o.ID, from.String(), o.Status.String(), who.SubjectID, nil, now)
	})
	if err != nil {
		return nil, s.internal(ctx, "cancel order", err)
	}

	s.logger.InfoContext(ctx, "order cancelled", "order_id", order.ID, "subject_id", who.SubjectID)
	return order, nil
}

// TotalRevenue sums shipped and delivered orders created inside w. Admin only.
func (s *Service) TotalRevenue(ctx context.Context, who identity.Identity, w domain.DateWindow) (Revenue, error) {
	if d := domain.Authorize(who, domain.OpRevenue, nil); !d.Allowed {
		return Revenue{}, d.Err
	}
	rev, err := s.aggregator.TotalRevenue(ctx, w)
	if err != nil {
		return Revenue{}, s.internal(ctx, "total revenue", err)
	}
	return rev, nil
}

// TotalCount counts orders created inside w. Admin only.
func (s *Service) TotalCount(ctx context.Context, who identity.Identity, w domain.DateWindow) (int, error) {
	if d := domain.Authorize(who, domain.OpCount, nil); !d.Allowed {
		return 0, d.Err
	}
	n, err := s.aggregator.TotalCount(ctx, w)
	if err != nil {
		return 0, s.internal(ctx, "total count", err)
	}
	return n, nil
}

// History lists the recorded changes of an order. Admin only.
func (s *Service) History(ctx context.Context, who identity.Identity, id string) ([]history.Entry, error) {
	if d := domain.Authorize(who, domain.OpHistory, nil); !d.Allowed {
		return nil, d.Err
	}
	if _, err := s.repo.Get(ctx, id, ""); err != nil {
		return nil, s.internal(ctx, "order history", err)
	}
	entries, err := s.repo.History(ctx, id)
	if err != nil {
		return nil, s.internal(ctx, "order history", err)
	}
	return entries, nil
}

func (s *Service) summaries(ctx context.Context, op string, f ports.Filter) ([]domain.Summary, error) {
	out, err := s.repo.Summaries(ctx, f)
	if err != nil {
		return nil, s.internal(ctx, op, err)
	}
	return out, nil
}

// internal logs err when it is not one of the typed domain failures. The
// error is returned unchanged; the transport decides what the client sees.
func (s *Service) internal(ctx context.Context, op string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		s.logger.ErrorContext(ctx, "order operation failed", "op", op, "error", err)
	}
	return err
}
