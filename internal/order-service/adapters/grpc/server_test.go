package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	orderv1 "github.com/jcmexdev/ecommerce-orders/internal/genproto/order/v1"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/adapters/sqlite"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/app"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors"
)

var (
	customer = identity.Identity{SubjectID: "user123", Roles: []string{identity.RoleUser}, Credential: "Bearer abc"}
	stranger = identity.Identity{SubjectID: "user456", Roles: []string{identity.RoleUser}}
	admin    = identity.Identity{SubjectID: "admin1", Roles: []string{identity.RoleAdmin}}
)

func newClient(t *testing.T) orderv1.OrderServiceClient {
	t.Helper()

	repo, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()))
	orderv1.RegisterOrderServiceServer(srv, NewServer(app.NewService(repo, domain.DefaultPricing())))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return orderv1.NewOrderServiceClient(conn)
}

func as(id identity.Identity) context.Context {
	return interceptors.OutgoingContext(context.Background(), id, "req-1", "")
}

func createReq() *orderv1.CreateOrderRequest {
	return &orderv1.CreateOrderRequest{
		CustomerName:    "John Doe",
		CustomerEmail:   "john.doe@example.com",
		ShippingAddress: "123 Main St",
		PaymentMethod:   "Credit Card",
		Items: []*orderv1.OrderItem{
			{ProductId: 1, ProductName: "Laptop", Quantity: 1, UnitPrice: "1299.99"},
			{ProductId: 2, ProductName: "USB-C Hub", Quantity: 1, UnitPrice: "79.99"},
		},
	}
}

func TestServer_CreateAndGet(t *testing.T) {
	client := newClient(t)

	created, err := client.CreateOrder(as(customer), createReq())
	require.NoError(t, err)
	o := created.Order
	assert.Equal(t, "user123", o.OwnerId)
	assert.Equal(t, "Pending", o.Status)
	assert.Equal(t, "1379.98", o.Subtotal)
	assert.Equal(t, "110.40", o.TaxAmount)
	assert.Equal(t, "9.99", o.ShippingCost)
	assert.Equal(t, "1500.37", o.TotalAmount)

	got, err := client.GetOrder(as(customer), &orderv1.GetOrderRequest{Id: o.Id})
	require.NoError(t, err)
	assert.Equal(t, o.Id, got.Order.Id)

	_, err = client.GetOrder(as(stranger), &orderv1.GetOrderRequest{Id: o.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_ValidationDetails(t *testing.T) {
	client := newClient(t)

	req := createReq()
	req.CustomerEmail = "nope"
	req.Items[0].UnitPrice = "abc"
	_, err := client.CreateOrder(as(customer), req)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	typed := apperr.FromStatus(err)
	assert.ErrorIs(t, typed, apperr.ErrValidation)
	assert.Contains(t, apperr.Problems(typed), "orderItems[0].unitPrice must be a decimal number")
}

func TestServer_QuantityOutOfRange(t *testing.T) {
	client := newClient(t)

	for _, qty := range []int64{-4294967295, 0, 4294967297} {
		req := createReq()
		req.Items[1].Quantity = qty
		_, err := client.CreateOrder(as(customer), req)
		require.Equal(t, codes.InvalidArgument, status.Code(err), "quantity %d", qty)

		problems := apperr.Problems(apperr.FromStatus(err))
		if qty > 0 {
			assert.Equal(t, []string{"orderItems[1].quantity must be at most 2147483647"}, problems)
		} else {
			assert.Equal(t, []string{"orderItems[1].quantity must be at least 1"}, problems)
		}
	}

	mine, err := client.ListMyOrders(as(customer), &orderv1.ListMyOrdersRequest{})
	require.NoError(t, err)
	assert.Empty(t, mine.Orders)
}

func TestServer_ReversedWindowMatchesNothing(t *testing.T) {
	client := newClient(t)

	_, err := client.CreateOrder(as(customer), createReq())
	require.NoError(t, err)

	now := time.Now()
	reversed := &orderv1.AnalyticsRequest{
		Start: timestamppb.New(now.Add(time.Hour)),
		End:   timestamppb.New(now.Add(-time.Hour)),
	}
	rev, err := client.TotalRevenue(as(admin), reversed)
	require.NoError(t, err)
	assert.Equal(t, "0.00", rev.Total)
	assert.Zero(t, rev.Orders)

	count, err := client.TotalCount(as(admin), reversed)
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}

func TestServer_Unauthenticated(t *testing.T) {
	client := newClient(t)

	_, err := client.ListOrders(context.Background(), &orderv1.ListOrdersRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_AdminFlow(t *testing.T) {
	client := newClient(t)

	created, err := client.CreateOrder(as(customer), createReq())
	require.NoError(t, err)
	id := created.Order.Id

	_, err = client.UpdateStatus(as(customer), &orderv1.UpdateStatusRequest{Id: id, Status: "Shipped"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = client.UpdateStatus(as(admin), &orderv1.UpdateStatusRequest{Id: id, Status: "Teleported"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	updated, err := client.UpdateStatus(as(admin), &orderv1.UpdateStatusRequest{Id: id, Status: "4", TrackingNumber: "TRK"})
	require.NoError(t, err)
	assert.Equal(t, "Delivered", updated.Order.Status)
	require.NotNil(t, updated.Order.ShippedDate)
	require.NotNil(t, updated.Order.DeliveredDate)

	_, err = client.CancelOrder(as(customer), &orderv1.CancelOrderRequest{Id: id})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.ErrorIs(t, apperr.FromStatus(err), apperr.ErrConflict)

	byStatus, err := client.ListByStatus(as(admin), &orderv1.ListByStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	require.Len(t, byStatus.Orders, 1)
	assert.Equal(t, int64(2), byStatus.Orders[0].ItemCount)

	rev, err := client.TotalRevenue(as(admin), &orderv1.AnalyticsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "1500.37", rev.Total)

	count, err := client.TotalCount(as(admin), &orderv1.AnalyticsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	hist, err := client.History(as(admin), &orderv1.HistoryRequest{Id: id})
	require.NoError(t, err)
	require.Len(t, hist.Entries, 2)
	assert.Equal(t, "ORDER_STATUS_UPDATED", hist.Entries[1].Action)
}

func TestServer_Cancel(t *testing.T) {
	client := newClient(t)

	created, err := client.CreateOrder(as(customer), createReq())
	require.NoError(t, err)

	_, err = client.CancelOrder(as(stranger), &orderv1.CancelOrderRequest{Id: created.Order.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	cancelled, err := client.CancelOrder(as(customer), &orderv1.CancelOrderRequest{Id: created.Order.Id})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", cancelled.Order.Status)

	mine, err := client.ListMyOrders(as(customer), &orderv1.ListMyOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Orders, 1)
	assert.Equal(t, "Cancelled", mine.Orders[0].Status)
}
