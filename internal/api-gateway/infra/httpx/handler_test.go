package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/infra/httpx/middlewares"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors"
)

// fakeOrderService records the last call and returns canned results.
type fakeOrderService struct {
	err error

	gotIdentity    identity.Identity
	gotRequestID   string
	gotIdempotency string
	gotNew         entity.NewOrder
	gotStatus      string
	gotUpdate      entity.StatusUpdate
	gotRange       entity.DateRange
	gotID          string
}

func (f *fakeOrderService) record(ctx context.Context) {
	f.gotIdentity = identity.FromContext(ctx)
	f.gotRequestID = interceptors.RequestID(ctx)
	f.gotIdempotency = interceptors.IdempotencyKey(ctx)
}

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:           "o-1",
		OwnerID:      "user123",
		Status:       "Pending",
		Subtotal:     decimal.RequireFromString("1379.98"),
		TaxAmount:    decimal.RequireFromString("110.4"),
		ShippingCost: decimal.RequireFromString("9.99"),
		TotalAmount:  decimal.RequireFromString("1500.37"),
		Items: []entity.OrderItem{
			{ProductID: 1, ProductName: "Laptop", Quantity: 1, UnitPrice: decimal.RequireFromString("1299.99"), LineTotal: decimal.RequireFromString("1299.99")},
		},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error) {
	f.record(ctx)
	f.gotNew = in
	if f.err != nil {
		return nil, f.err
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	f.record(ctx)
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) list(ctx context.Context) ([]entity.OrderSummary, error) {
	f.record(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return []entity.OrderSummary{{ID: "o-1", TotalAmount: decimal.RequireFromString("117.97"), Status: "Pending", ItemCount: 2}}, nil
}

func (f *fakeOrderService) ListOrders(ctx context.Context) ([]entity.OrderSummary, error) {
	return f.list(ctx)
}

func (f *fakeOrderService) ListMyOrders(ctx context.Context) ([]entity.OrderSummary, error) {
	return f.list(ctx)
}

func (f *fakeOrderService) ListByStatus(ctx context.Context, status string) ([]entity.OrderSummary, error) {
	f.gotStatus = status
	return f.list(ctx)
}

func (f *fakeOrderService) UpdateStatus(ctx context.Context, id string, upd entity.StatusUpdate) (*entity.Order, error) {
	f.record(ctx)
	f.gotID, f.gotUpdate = id, upd
	if f.err != nil {
		return nil, f.err
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) CancelOrder(ctx context.Context, id string) (*entity.Order, error) {
	f.record(ctx)
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return sampleOrder(), nil
}

func (f *fakeOrderService) TotalRevenue(ctx context.Context, r entity.DateRange) (decimal.Decimal, error) {
	f.record(ctx)
	f.gotRange = r
	return decimal.RequireFromString("3000.7"), f.err
}

func (f *fakeOrderService) TotalCount(ctx context.Context, r entity.DateRange) (int64, error) {
	f.record(ctx)
	f.gotRange = r
	return 7, f.err
}

func (f *fakeOrderService) History(ctx context.Context, id string) ([]entity.HistoryEntry, error) {
	f.record(ctx)
	f.gotID = id
	return []entity.HistoryEntry{{EventID: "e-1", Action: "ORDER_CREATED", ToStatus: "Pending"}}, f.err
}

func newTestRouter(svc *fakeOrderService) http.Handler {
	return NewRouter(NewHandler(svc), middlewares.HeaderVerifier{
		SubjectHeader: "X-Auth-Subject",
		RolesHeader:   "X-Auth-Roles",
	})
}

func do(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("X-Auth-Subject", "user123")
	req.Header.Set("X-Auth-Roles", "User")
	for k, v := range headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestCreateOrder(t *testing.T) {
	svc := &fakeOrderService{}
	body := `{
		"customerName": "John Doe",
		"customerEmail": "john.doe@example.com",
		"shippingAddress": "123 Main St",
		"paymentMethod": "Credit Card",
		"orderItems": [{"productId": 1, "productName": "Laptop", "quantity": 1, "unitPrice": 1299.99}]
	}`

	rec, out := do(t, newTestRouter(svc), http.MethodPost, "/orders", body, map[string]string{
		"X-Idempotency-Key": "idem-1",
		"Authorization":     "Bearer token",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Order created successfully", out["message"])
	data := out["data"].(map[string]any)
	assert.Equal(t, 1500.37, data["totalAmount"])
	assert.Equal(t, 110.4, data["taxAmount"])
	assert.Contains(t, rec.Body.String(), `"taxAmount":110.40`)

	assert.Equal(t, "user123", svc.gotIdentity.SubjectID)
	assert.Equal(t, []string{"User"}, svc.gotIdentity.Roles)
	assert.Equal(t, "Bearer token", svc.gotIdentity.Credential)
	assert.Equal(t, "idem-1", svc.gotIdempotency)
	assert.NotEmpty(t, svc.gotRequestID)
	require.Len(t, svc.gotNew.Items, 1)
	assert.True(t, decimal.RequireFromString("1299.99").Equal(svc.gotNew.Items[0].UnitPrice))
}

func TestCreateOrder_BadJSON(t *testing.T) {
	rec, out := do(t, newTestRouter(&fakeOrderService{}), http.MethodPost, "/orders", `{"orderItems": [{"unitPrice": "abc"}]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Invalid request data", out["message"])
}

func TestUnauthenticated(t *testing.T) {
	svc := &fakeOrderService{}
	rec, out := do(t, newTestRouter(svc), http.MethodGet, "/orders", "", map[string]string{"X-Auth-Subject": ""})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Empty(t, svc.gotIdentity.SubjectID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", apperr.Invalid("customerName is required"), http.StatusBadRequest, "Invalid request data"},
		{"not found", apperr.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
		{"forbidden", &apperr.ForbiddenError{Reason: "Admin role required"}, http.StatusForbidden, "Admin role required"},
		{"conflict", &apperr.ConflictError{Reason: "Cannot cancel shipped or delivered orders"}, http.StatusConflict, "Cannot cancel shipped or delivered orders"},
		{"unauthenticated", apperr.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "An error occurred while processing the request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeOrderService{err: tt.err}
			rec, out := do(t, newTestRouter(svc), http.MethodGet, "/orders/o-1", "", nil)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, tt.message, out["message"])
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestValidationErrorsListed(t *testing.T) {
	svc := &fakeOrderService{err: apperr.Invalid("a", "b")}
	rec, out := do(t, newTestRouter(svc), http.MethodPost, "/orders", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"a", "b"}, out["errors"])
}

func TestRoutes(t *testing.T) {
	svc := &fakeOrderService{}
	h := newTestRouter(svc)

	rec, out := do(t, h, http.MethodGet, "/orders/my-orders", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	list := out["data"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, float64(2), list[0].(map[string]any)["itemCount"])

	rec, _ = do(t, h, http.MethodGet, "/orders/status/shipped", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shipped", svc.gotStatus)

	rec, _ = do(t, h, http.MethodPut, "/orders/o-9/status", `{"status": 3, "trackingNumber": "TRK"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "o-9", svc.gotID)
	assert.Equal(t, "3", svc.gotUpdate.Status)
	assert.Equal(t, "TRK", svc.gotUpdate.TrackingNumber)

	rec, _ = do(t, h, http.MethodPut, "/orders/o-9/status", `{"status": "Delivered"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delivered", svc.gotUpdate.Status)

	rec, out = do(t, h, http.MethodPut, "/orders/o-5/cancel", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Order cancelled successfully", out["message"])
	assert.Equal(t, "o-5", svc.gotID)

	rec, out = do(t, h, http.MethodGet, "/orders/o-5/history", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["data"], 1)

	rec, _ = do(t, h, http.MethodGet, "/healthz", "", map[string]string{"X-Auth-Subject": ""})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalytics(t *testing.T) {
	svc := &fakeOrderService{}
	h := newTestRouter(svc)

	rec, out := do(t, h, http.MethodGet, "/orders/analytics/revenue?startDate=2024-01-01&end=2024-01-31T23:59:59Z", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3000.7, out["data"])
	assert.Contains(t, rec.Body.String(), `"data":3000.70`)
	require.NotNil(t, svc.gotRange.Start)
	require.NotNil(t, svc.gotRange.End)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *svc.gotRange.Start)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), *svc.gotRange.End)

	rec, out = do(t, h, http.MethodGet, "/orders/analytics/count", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), out["data"])
	assert.Nil(t, svc.gotRange.Start)

	rec, _ = do(t, h, http.MethodGet, "/orders/analytics/count?start=yesterday", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
