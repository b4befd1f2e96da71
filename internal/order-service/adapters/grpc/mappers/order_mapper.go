// Package mappers converts between domain orders and the orderv1 wire types.
package mappers

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	orderv1 "github.com/jcmexdev/ecommerce-orders/internal/genproto/order/v1"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// TimeFrom converts an optional wire timestamp. Unset stays nil.
func TimeFrom(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// ToProtoOrder maps a domain order to its wire form.
func ToProtoOrder(o *domain.Order) *orderv1.Order {
	if o == nil {
		return nil
	}
	items := make([]*orderv1.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = &orderv1.OrderItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Sku:         it.SKU,
			Quantity:    int64(it.Quantity),
			UnitPrice:   money(it.UnitPrice),
			LineTotal:   money(it.LineTotal),
			ImageUrl:    it.ImageURL,
		}
	}
	return &orderv1.Order{
		Id:               o.ID,
		OwnerId:          o.OwnerID,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		ShippingAddress:  o.ShippingAddress,
		BillingAddress:   o.BillingAddress,
		Items:            items,
		Subtotal:         money(o.Subtotal),
		TaxAmount:        money(o.TaxAmount),
		ShippingCost:     money(o.ShippingCost),
		TotalAmount:      money(o.TotalAmount),
		Status:           o.Status.String(),
		PaymentMethod:    o.PaymentMethod,
		PaymentReference: o.PaymentReference,
		TrackingNumber:   o.TrackingNumber,
		Notes:            o.Notes,
		ShippedDate:      timestamp(o.ShippedDate),
		DeliveredDate:    timestamp(o.DeliveredDate),
		CreatedAt:        timestamppb.New(o.CreatedAt),
		UpdatedAt:        timestamppb.New(o.UpdatedAt),
	}
}

// ToProtoSummaries maps list results. A nil input yields an empty slice.
func ToProtoSummaries(in []domain.Summary) []*orderv1.OrderSummary {
	out := make([]*orderv1.OrderSummary, len(in))
	for i, s := range in {
		out[i] = &orderv1.OrderSummary{
			Id:            s.ID,
			CustomerName:  s.CustomerName,
			CustomerEmail: s.CustomerEmail,
			TotalAmount:   money(s.TotalAmount),
			Status:        s.Status.String(),
			CreatedAt:     timestamppb.New(s.CreatedAt),
			ItemCount:     int64(s.ItemCount),
		}
	}
	return out
}

// ToProtoHistory maps history entries. Payloads stay server side.
func ToProtoHistory(in []history.Entry) []*orderv1.HistoryEntry {
	out := make([]*orderv1.HistoryEntry, len(in))
	for i, e := range in {
		out[i] = &orderv1.HistoryEntry{
			EventId:     e.EventID,
			Action:      string(e.Action),
			FromStatus:  e.FromStatus,
			ToStatus:    e.ToStatus,
			SubjectId:   e.SubjectID,
			TraceId:     e.TraceID,
			CreatedAt:   timestamppb.New(e.CreatedAt),
			PublishedAt: timestamp(e.PublishedAt),
		}
	}
	return out
}

// FromProtoCreate maps a create request to a draft. Unparseable prices and
// oversized quantities are reported together as one validation error.
func FromProtoCreate(req *orderv1.CreateOrderRequest) (domain.Draft, error) {
	d := domain.Draft{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Items:           make([]domain.DraftItem, len(req.Items)),
	}

	var problems []string
	for i, it := range req.Items {
		price, err := decimal.NewFromString(strings.TrimSpace(it.UnitPrice))
		if err != nil {
			problems = append(problems, fmt.Sprintf("orderItems[%d].unitPrice must be a decimal number", i))
		}
		qty := it.GetQuantity()
		if qty > domain.MaxQuantity {
			problems = append(problems, fmt.Sprintf("orderItems[%d].quantity must be at most %d", i, domain.MaxQuantity))
		}
		d.Items[i] = domain.DraftItem{
			ProductID:   it.GetProductId(),
			ProductName: it.GetProductName(),
			SKU:         it.GetSku(),
			Quantity:    narrowQuantity(qty),
			UnitPrice:   price,
			ImageURL:    it.GetImageUrl(),
		}
	}
	if len(problems) > 0 {
		return domain.Draft{}, apperr.Invalid(problems...)
	}
	return d, nil
}

// narrowQuantity converts a wire quantity to int without wrapping. Anything
// below 1 becomes 0 so Draft.Validate reports it.
func narrowQuantity(q int64) int {
	switch {
	case q < 1:
		return 0
	case q > domain.MaxQuantity:
		return domain.MaxQuantity
	}
	return int(q)
}
