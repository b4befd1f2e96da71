package httpx

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/domain/entity"
)

// Envelope wraps every response body.
type Envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	ShippingAddress string               `json:"shippingAddress"`
	BillingAddress  string               `json:"billingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	Notes           string               `json:"notes"`
	OrderItems      []CreateOrderItemDTO `json:"orderItems"`
}

// CreateOrderItemDTO accepts unitPrice as a JSON number or a numeric string.
type CreateOrderItemDTO struct {
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductSKU      string          `json:"productSku"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	ProductImageURL string          `json:"productImageUrl"`
}

type UpdateStatusRequest struct {
	Status         json.RawMessage `json:"status"`
	TrackingNumber string          `json:"trackingNumber"`
	Notes          string          `json:"notes"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	UserID           string              `json:"userId"`
	CustomerName     string              `json:"customerName"`
	CustomerEmail    string              `json:"customerEmail"`
	ShippingAddress  string              `json:"shippingAddress"`
	BillingAddress   string              `json:"billingAddress"`
	TotalAmount      json.Number         `json:"totalAmount"`
	TaxAmount        json.Number         `json:"taxAmount"`
	ShippingCost     json.Number         `json:"shippingCost"`
	SubTotal         json.Number         `json:"subTotal"`
	Status           string              `json:"status"`
	PaymentMethod    string              `json:"paymentMethod"`
	PaymentReference string              `json:"paymentReference"`
	ShippedDate      *time.Time          `json:"shippedDate"`
	DeliveredDate    *time.Time          `json:"deliveredDate"`
	TrackingNumber   string              `json:"trackingNumber"`
	Notes            string              `json:"notes"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	OrderItems       []OrderItemResponse `json:"orderItems"`
}

type OrderItemResponse struct {
	ProductID       int64       `json:"productId"`
	ProductName     string      `json:"productName"`
	ProductSKU      string      `json:"productSku"`
	Quantity        int         `json:"quantity"`
	UnitPrice       json.Number `json:"unitPrice"`
	TotalPrice      json.Number `json:"totalPrice"`
	ProductImageURL string      `json:"productImageUrl"`
}

type OrderSummaryResponse struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	TotalAmount   json.Number `json:"totalAmount"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	ItemCount     int         `json:"itemCount"`
}

type HistoryEntryResponse struct {
	EventID     string     `json:"eventId"`
	Action      string     `json:"action"`
	FromStatus  string     `json:"fromStatus,omitempty"`
	ToStatus    string     `json:"toStatus"`
	SubjectID   string     `json:"subjectId"`
	TraceID     string     `json:"traceId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// money renders an amount as a JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func (r CreateOrderRequest) toEntity() entity.NewOrder {
	items := make([]entity.OrderItem, len(r.OrderItems))
	for i, it := range r.OrderItems {
		items[i] = entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			ImageURL:    it.ProductImageURL,
		}
	}
	return entity.NewOrder{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
		Items:           items,
	}
}

func mapOrderToResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductSKU:      it.SKU,
			Quantity:        it.Quantity,
			UnitPrice:       money(it.UnitPrice),
			TotalPrice:      money(it.LineTotal),
			ProductImageURL: it.ImageURL,
		}
	}
	return OrderResponse{
		ID:               o.ID,
		UserID:           o.OwnerID,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		ShippingAddress:  o.ShippingAddress,
		BillingAddress:   o.BillingAddress,
		TotalAmount:      money(o.TotalAmount),
		TaxAmount:        money(o.TaxAmount),
		ShippingCost:     money(o.ShippingCost),
		SubTotal:         money(o.Subtotal),
		Status:           o.Status,
		PaymentMethod:    o.PaymentMethod,
		PaymentReference: o.PaymentReference,
		ShippedDate:      o.ShippedDate,
		DeliveredDate:    o.DeliveredDate,
		TrackingNumber:   o.TrackingNumber,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		OrderItems:       items,
	}
}

func mapSummaries(in []entity.OrderSummary) []OrderSummaryResponse {
	out := make([]OrderSummaryResponse, len(in))
	for i, s := range in {
		out[i] = OrderSummaryResponse{
			ID:            s.ID,
			CustomerName:  s.CustomerName,
			CustomerEmail: s.CustomerEmail,
			TotalAmount:   money(s.TotalAmount),
			Status:        s.Status,
			CreatedAt:     s.CreatedAt,
			ItemCount:     s.ItemCount,
		}
	}
	return out
}

func mapHistory(in []entity.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(in))
	for i, e := range in {
		out[i] = HistoryEntryResponse(e)
	}
	return out
}
