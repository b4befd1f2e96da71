package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/adapters/sqlite"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors/constants"
)

var (
	john   = identity.Identity{SubjectID: "user123", Roles: []string{identity.RoleUser}}
	jane   = identity.Identity{SubjectID: "user456", Roles: []string{identity.RoleUser}}
	admin  = identity.Identity{SubjectID: "admin1", Roles: []string{identity.RoleAdmin}}
	nobody = identity.Identity{}
)

// fakeCache is an in-memory cache.Cache.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[key] = value.(string)
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return c.data[key], nil
}

func (c *fakeCache) GenerateKey(operation, key string) string {
	return cache.GenerateKey("order", operation, key)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func setup(t *testing.T, opts ...Option) (*Service, *clock) {
	t.Helper()
	repo, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	clk := &clock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]Option{
		WithClock(clk.now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	return NewService(repo, domain.DefaultPricing(), opts...), clk
}

func laptopDraft() domain.Draft {
	return domain.Draft{
		CustomerName:    "John Doe",
		CustomerEmail:   "john.doe@example.com",
		ShippingAddress: "123 Main St",
		PaymentMethod:   "Credit Card",
		Items: []domain.DraftItem{
			{ProductID: 1, ProductName: "Laptop", Quantity: 1, UnitPrice: decimal.RequireFromString("1299.99")},
			{ProductID: 2, ProductName: "USB-C Hub", Quantity: 1, UnitPrice: decimal.RequireFromString("79.99")},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	svc, clk := setup(t)
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)
	assert.Equal(t, "user123", o.OwnerID)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, clk.t, o.CreatedAt)
	assert.Equal(t, "1500.37", o.TotalAmount.StringFixed(2))

	got, err := svc.GetOrder(ctx, john, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	entries, err := svc.History(ctx, admin, o.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Payload, `"totalAmount":"1500.37"`)
}

func TestCreateOrder_Rejected(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, nobody, laptopDraft())
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	d := laptopDraft()
	d.Items = nil
	_, err = svc.CreateOrder(ctx, john, d)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	list, err := svc.ListOrders(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateOrder_Idempotent(t *testing.T) {
	fc := newFakeCache()
	svc, _ := setup(t, WithCache(fc, time.Hour))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(constants.HeaderXIdempotencyKey, "key-1"))

	first, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// The same key from another subject is a different request.
	third, err := svc.CreateOrder(ctx, jane, laptopDraft())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)

	n, err := svc.TotalCount(ctx, admin, domain.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCreateOrder_CacheFailureIsNotFatal(t *testing.T) {
	fc := newFakeCache()
	fc.err = errors.New("redis down")
	svc, _ := setup(t, WithCache(fc, time.Hour))
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(constants.HeaderXIdempotencyKey, "key-1"))

	_, err := svc.CreateOrder(ctx, john, laptopDraft())
	assert.NoError(t, err)
}

func TestGetOrder_Visibility(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	o, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)

	_, err = svc.GetOrder(ctx, jane, o.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.GetOrder(ctx, admin, o.ID)
	assert.NoError(t, err)

	_, err = svc.GetOrder(ctx, nobody, o.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestListOrders(t *testing.T) {
	svc, clk := setup(t)
	ctx := context.Background()

	a, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)
	clk.advance(time.Minute)
	b, err := svc.CreateOrder(ctx, jane, laptopDraft())
	require.NoError(t, err)

	all, err := svc.ListOrders(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)

	own, err := svc.ListOrders(ctx, john)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, a.ID, own[0].ID)

	mine, err := svc.ListMyOrders(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = svc.ListByStatus(ctx, john, domain.StatusPending)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	pending, err := svc.ListByStatus(ctx, admin, domain.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestUpdateStatus(t *testing.T) {
	svc, clk := setup(t)
	ctx := context.Background()
	o, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, john, o.ID, UpdateStatus{Status: domain.StatusShipped})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.UpdateStatus(ctx, admin, "missing", UpdateStatus{Status: domain.StatusShipped})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	clk.advance(time.Hour)
	updated, err := svc.UpdateStatus(ctx, admin, o.ID, UpdateStatus{Status: domain.StatusShipped, TrackingNumber: "1Z999"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)
	assert.Equal(t, "1Z999", updated.TrackingNumber)
	require.NotNil(t, updated.ShippedDate)
	assert.Equal(t, clk.t, *updated.ShippedDate)
	assert.True(t, o.TotalAmount.Equal(updated.TotalAmount))

	entries, err := svc.History(ctx, admin, o.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Shipped", entries[1].ToStatus)
	assert.Equal(t, "admin1", entries[1].SubjectID)
}

func TestCancelOrder(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	o, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)

	_, err = svc.CancelOrder(ctx, jane, o.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// Admins get no bypass.
	_, err = svc.CancelOrder(ctx, admin, o.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	cancelled, err := svc.CancelOrder(ctx, john, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}

func TestCancelOrder_AfterShipping(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	o, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, admin, o.ID, UpdateStatus{Status: domain.StatusDelivered})
	require.NoError(t, err)

	_, err = svc.CancelOrder(ctx, john, o.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "Cannot cancel shipped or delivered orders", apperr.PublicMessage(err))

	got, err := svc.GetOrder(ctx, john, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got.Status)
}

func TestAnalytics(t *testing.T) {
	svc, clk := setup(t)
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, john, laptopDraft())
	require.NoError(t, err)
	clk.advance(24 * time.Hour)
	second, err := svc.CreateOrder(ctx, jane, laptopDraft())
	require.NoError(t, err)
	clk.advance(24 * time.Hour)
	_, err = svc.CreateOrder(ctx, jane, laptopDraft())
	require.NoError(t, err)

	for _, id := range []string{first.ID, second.ID} {
		_, err = svc.UpdateStatus(ctx, admin, id, UpdateStatus{Status: domain.StatusDelivered})
		require.NoError(t, err)
	}

	_, err = svc.TotalRevenue(ctx, john, domain.DateWindow{})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	rev, err := svc.TotalRevenue(ctx, admin, domain.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, "3000.74", rev.Total.StringFixed(2))
	assert.Equal(t, 2, rev.Orders)

	start := first.CreatedAt.Add(time.Hour)
	rev, err = svc.TotalRevenue(ctx, admin, domain.DateWindow{Start: &start})
	require.NoError(t, err)
	assert.Equal(t, "1500.37", rev.Total.StringFixed(2))

	n, err := svc.TotalCount(ctx, admin, domain.DateWindow{Start: &start})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	end := start.Add(-2 * time.Hour)
	n, err = svc.TotalCount(ctx, admin, domain.DateWindow{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Zero(t, n)

	rev, err = svc.TotalRevenue(ctx, admin, domain.DateWindow{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, "0.00", rev.Total.StringFixed(2))
	assert.Zero(t, rev.Orders)
}
