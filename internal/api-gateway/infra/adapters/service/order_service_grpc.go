package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/ports"
	orderv1 "github.com/jcmexdev/ecommerce-orders/internal/genproto/order/v1"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors"
)

// GRPCOrderService is the adapter that talks to the order service over gRPC.
type GRPCOrderService struct {
	client orderv1.OrderServiceClient
}

// NewGRPCOrderClient returns the port backed by client.
func NewGRPCOrderClient(client orderv1.OrderServiceClient) ports.OrderService {
	return &GRPCOrderService{client: client}
}

var _ ports.OrderService = (*GRPCOrderService)(nil)

// outgoing forwards the caller's identity, request id and idempotency key as
// gRPC metadata.
func outgoing(ctx context.Context) context.Context {
	return interceptors.OutgoingContext(ctx,
		identity.FromContext(ctx),
		interceptors.RequestID(ctx),
		interceptors.IdempotencyKey(ctx),
	)
}

func (s *GRPCOrderService) CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error) {
	items := make([]*orderv1.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &orderv1.OrderItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Sku:         it.SKU,
			Quantity:    int64(it.Quantity),
			UnitPrice:   it.UnitPrice.String(),
			ImageUrl:    it.ImageURL,
		})
	}

	res, err := s.client.CreateOrder(outgoing(ctx), &orderv1.CreateOrderRequest{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		Items:           items,
	})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return orderFromResponse("CreateOrder", res)
}

func (s *GRPCOrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	res, err := s.client.GetOrder(outgoing(ctx), &orderv1.GetOrderRequest{Id: id})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return orderFromResponse("GetOrder", res)
}

func (s *GRPCOrderService) ListOrders(ctx context.Context) ([]entity.OrderSummary, error) {
	res, err := s.client.ListOrders(outgoing(ctx), &orderv1.ListOrdersRequest{})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return summariesFromResponse(res)
}

func (s *GRPCOrderService) ListMyOrders(ctx context.Context) ([]entity.OrderSummary, error) {
	res, err := s.client.ListMyOrders(outgoing(ctx), &orderv1.ListMyOrdersRequest{})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return summariesFromResponse(res)
}

func (s *GRPCOrderService) ListByStatus(ctx context.Context, status string) ([]entity.OrderSummary, error) {
	res, err := s.client.ListByStatus(outgoing(ctx), &orderv1.ListByStatusRequest{Status: status})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return summariesFromResponse(res)
}

func (s *GRPCOrderService) UpdateStatus(ctx context.Context, id string, upd entity.StatusUpdate) (*entity.Order, error) {
	res, err := s.client.UpdateStatus(outgoing(ctx), &orderv1.UpdateStatusRequest{
		Id:             id,
		Status:         upd.Status,
		TrackingNumber: upd.TrackingNumber,
		Notes:          upd.Notes,
	})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return orderFromResponse("UpdateStatus", res)
}

func (s *GRPCOrderService) CancelOrder(ctx context.Context, id string) (*entity.Order, error) {
	res, err := s.client.CancelOrder(outgoing(ctx), &orderv1.CancelOrderRequest{Id: id})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	return orderFromResponse("CancelOrder", res)
}

func (s *GRPCOrderService) TotalRevenue(ctx context.Context, r entity.DateRange) (decimal.Decimal, error) {
	res, err := s.client.TotalRevenue(outgoing(ctx), analyticsRequest(r))
	if err != nil {
		return decimal.Zero, apperr.FromStatus(err)
	}
	total, err := decimal.NewFromString(res.Total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("grpc TotalRevenue: bad total %q: %w", res.Total, err)
	}
	return total, nil
}

func (s *GRPCOrderService) TotalCount(ctx context.Context, r entity.DateRange) (int64, error) {
	res, err := s.client.TotalCount(outgoing(ctx), analyticsRequest(r))
	if err != nil {
		return 0, apperr.FromStatus(err)
	}
	return res.Count, nil
}

func (s *GRPCOrderService) History(ctx context.Context, id string) ([]entity.HistoryEntry, error) {
	res, err := s.client.History(outgoing(ctx), &orderv1.HistoryRequest{Id: id})
	if err != nil {
		return nil, apperr.FromStatus(err)
	}
	out := make([]entity.HistoryEntry, len(res.Entries))
	for i, e := range res.Entries {
		out[i] = entity.HistoryEntry{
			EventID:     e.GetEventId(),
			Action:      e.GetAction(),
			FromStatus:  e.GetFromStatus(),
			ToStatus:    e.GetToStatus(),
			SubjectID:   e.GetSubjectId(),
			TraceID:     e.GetTraceId(),
			CreatedAt:   e.GetCreatedAt().AsTime(),
			PublishedAt: optionalTime(e.GetPublishedAt()),
		}
	}
	return out, nil
}

func orderFromResponse(op string, res *orderv1.OrderResponse) (*entity.Order, error) {
	if res == nil || res.Order == nil {
		return nil, fmt.Errorf("grpc %s: empty order in response", op)
	}
	return mapProtoOrderToEntity(res.Order)
}

func mapProtoOrderToEntity(po *orderv1.Order) (*entity.Order, error) {
	var p moneyParser
	o := &entity.Order{
		ID:               po.GetId(),
		OwnerID:          po.GetOwnerId(),
		CustomerName:     po.CustomerName,
		CustomerEmail:    po.CustomerEmail,
		ShippingAddress:  po.ShippingAddress,
		BillingAddress:   po.BillingAddress,
		Subtotal:         p.parse(po.Subtotal),
		TaxAmount:        p.parse(po.TaxAmount),
		ShippingCost:     p.parse(po.ShippingCost),
		TotalAmount:      p.parse(po.TotalAmount),
		Status:           po.Status,
		PaymentMethod:    po.PaymentMethod,
		PaymentReference: po.PaymentReference,
		TrackingNumber:   po.TrackingNumber,
		Notes:            po.Notes,
		ShippedDate:      optionalTime(po.GetShippedDate()),
		DeliveredDate:    optionalTime(po.GetDeliveredDate()),
		CreatedAt:        po.GetCreatedAt().AsTime(),
		UpdatedAt:        po.GetUpdatedAt().AsTime(),
		Items:            make([]entity.OrderItem, len(po.Items)),
	}
	for i, it := range po.Items {
		o.Items[i] = entity.OrderItem{
			ProductID:   it.GetProductId(),
			ProductName: it.GetProductName(),
			SKU:         it.GetSku(),
			Quantity:    int(it.GetQuantity()),
			UnitPrice:   p.parse(it.GetUnitPrice()),
			LineTotal:   p.parse(it.GetLineTotal()),
			ImageURL:    it.GetImageUrl(),
		}
	}
	if p.err != nil {
		return nil, fmt.Errorf("grpc: order %s: %w", po.GetId(), p.err)
	}
	return o, nil
}

func summariesFromResponse(res *orderv1.ListOrdersResponse) ([]entity.OrderSummary, error) {
	var p moneyParser
	out := make([]entity.OrderSummary, len(res.Orders))
	for i, s := range res.Orders {
		out[i] = entity.OrderSummary{
			ID:            s.GetId(),
			CustomerName:  s.CustomerName,
			CustomerEmail: s.CustomerEmail,
			TotalAmount:   p.parse(s.TotalAmount),
			Status:        s.Status,
			CreatedAt:     s.GetCreatedAt().AsTime(),
			ItemCount:     int(s.GetItemCount()),
		}
	}
	if p.err != nil {
		return nil, fmt.Errorf("grpc: order summaries: %w", p.err)
	}
	return out, nil
}

func analyticsRequest(r entity.DateRange) *orderv1.AnalyticsRequest {
	req := &orderv1.AnalyticsRequest{}
	if r.Start != nil {
		req.Start = timestamppb.New(*r.Start)
	}
	if r.End != nil {
		req.End = timestamppb.New(*r.End)
	}
	return req
}

// optionalTime maps an unset timestamp to nil.
func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// moneyParser parses a run of decimal strings, keeping the first failure.
type moneyParser struct {
	err error
}

func (p *moneyParser) parse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("bad amount %q: %w", s, err)
	}
	return d
}
