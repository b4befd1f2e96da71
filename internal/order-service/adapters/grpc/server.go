// Package grpc exposes the order core as the order.v1.OrderService gRPC
// service.
package grpc

import (
	"context"

	orderv1 "github.com/jcmexdev/ecommerce-orders/internal/genproto/order/v1"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/adapters/grpc/mappers"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/app"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
)

// Server adapts app.Service to orderv1.OrderServiceServer. The caller's
// identity is read from the context, where interceptors.TraceServerInterceptor
// put it.
type Server struct {
	orderv1.UnimplementedOrderServiceServer
	svc *app.Service
}

var _ orderv1.OrderServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateOrder(ctx context.Context, req *orderv1.CreateOrderRequest) (*orderv1.OrderResponse, error) {
	draft, err := mappers.FromProtoCreate(req)
	if err != nil {
		return nil, toStatus(err)
	}
	order, err := s.svc.CreateOrder(ctx, identity.FromContext(ctx), draft)
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.OrderResponse{Order: mappers.ToProtoOrder(order)}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.OrderResponse, error) {
	order, err := s.svc.GetOrder(ctx, identity.FromContext(ctx), req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.OrderResponse{Order: mappers.ToProtoOrder(order)}, nil
}

func (s *Server) ListOrders(ctx context.Context, _ *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	list, err := s.svc.ListOrders(ctx, identity.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.ListOrdersResponse{Orders: mappers.ToProtoSummaries(list)}, nil
}

func (s *Server) ListMyOrders(ctx context.Context, _ *orderv1.ListMyOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	list, err := s.svc.ListMyOrders(ctx, identity.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.ListOrdersResponse{Orders: mappers.ToProtoSummaries(list)}, nil
}

func (s *Server) ListByStatus(ctx context.Context, req *orderv1.ListByStatusRequest) (*orderv1.ListOrdersResponse, error) {
	who := identity.FromContext(ctx)
	// Non-admins are refused before the status is parsed.
	if d := domain.Authorize(who, domain.OpListByStatus, nil); !d.Allowed {
		return nil, toStatus(d.Err)
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, toStatus(err)
	}
	list, err := s.svc.ListByStatus(ctx, who, status)
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.ListOrdersResponse{Orders: mappers.ToProtoSummaries(list)}, nil
}

func (s *Server) UpdateStatus(ctx context.Context, req *orderv1.UpdateStatusRequest) (*orderv1.OrderResponse, error) {
	who := identity.FromContext(ctx)
	if d := domain.Authorize(who, domain.OpUpdateStatus, nil); !d.Allowed {
		return nil, toStatus(d.Err)
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, toStatus(err)
	}
	order, err := s.svc.UpdateStatus(ctx, who, req.GetId(), app.UpdateStatus{
		Status:         status,
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.OrderResponse{Order: mappers.ToProtoOrder(order)}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *orderv1.CancelOrderRequest) (*orderv1.OrderResponse, error) {
	order, err := s.svc.CancelOrder(ctx, identity.FromContext(ctx), req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.OrderResponse{Order: mappers.ToProtoOrder(order)}, nil
}

func (s *Server) TotalRevenue(ctx context.Context, req *orderv1.AnalyticsRequest) (*orderv1.RevenueResponse, error) {
	rev, err := s.svc.TotalRevenue(ctx, identity.FromContext(ctx), window(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.RevenueResponse{Total: rev.Total.StringFixed(2), Orders: int64(rev.Orders)}, nil
}

func (s *Server) TotalCount(ctx context.Context, req *orderv1.AnalyticsRequest) (*orderv1.CountResponse, error) {
	n, err := s.svc.TotalCount(ctx, identity.FromContext(ctx), window(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.CountResponse{Count: int64(n)}, nil
}

func (s *Server) History(ctx context.Context, req *orderv1.HistoryRequest) (*orderv1.HistoryResponse, error) {
	entries, err := s.svc.History(ctx, identity.FromContext(ctx), req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &orderv1.HistoryResponse{Entries: mappers.ToProtoHistory(entries)}, nil
}

func window(req *orderv1.AnalyticsRequest) domain.DateWindow {
	return domain.DateWindow{Start: mappers.TimeFrom(req.GetStart()), End: mappers.TimeFrom(req.GetEnd())}
}

func toStatus(err error) error {
	return apperr.ToStatus(err).Err()
}
