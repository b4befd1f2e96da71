package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/core/ports"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

// Handler serves the order HTTP API on top of the order service port.
type Handler struct {
	orderService ports.OrderService
}

func NewHandler(os ports.OrderService) *Handler {
	return &Handler{orderService: os}
}

// ListOrders returns every order for admins and the caller's own otherwise.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, mapSummaries(list), "Orders retrieved successfully")
}

func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, mapOrderToResponse(order), "Order retrieved successfully")
}

func (h *Handler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.orderService.ListMyOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, mapSummaries(list), "User orders retrieved successfully")
}

func (h *Handler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	list, err := h.orderService.ListByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, mapSummaries(list), "Orders retrieved successfully")
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.Invalid("request body must be a valid order JSON document"))
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req.toEntity())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, mapOrderToResponse(order), "Order created successfully")
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.Invalid("request body must be a valid JSON document"))
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), entity.StatusUpdate{
		Status:         statusValue(req.Status),
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, mapOrderToResponse(order), "Order status updated successfully")
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	if _, err := h.orderService.CancelOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "Order cancelled successfully")
}

func (h *Handler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRange(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	total, err := h.orderService.TotalRevenue(r.Context(), rng)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, money(total), "Total revenue retrieved successfully")
}

func (h *Handler) TotalCount(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRange(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	n, err := h.orderService.TotalCount(r.Context(), rng)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, n, "Order count retrieved successfully")
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.orderService.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, mapHistory(entries), "Order history retrieved successfully")
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// statusValue accepts the status as a JSON string or number.
func statusValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// dateRange reads start/startDate and end/endDate. Values are RFC 3339
// timestamps or plain dates, which mean midnight UTC.
func dateRange(r *http.Request) (entity.DateRange, error) {
	var (
		rng      entity.DateRange
		problems []string
	)
	q := r.URL.Query()
	parse := func(names ...string) *time.Time {
		for _, name := range names {
			raw := strings.TrimSpace(q.Get(name))
			if raw == "" {
				continue
			}
			t, err := parseDate(raw)
			if err != nil {
				problems = append(problems, name+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
				return nil
			}
			return &t
		}
		return nil
	}
	rng.Start = parse("start", "startDate")
	rng.End = parse("end", "endDate")
	if len(problems) > 0 {
		return entity.DateRange{}, apperr.Invalid(problems...)
	}
	return rng, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, status int, data any, msg string) {
	writeJSON(w, status, Envelope{Success: true, Data: data, Message: msg})
}

// writeError maps a classified error to its HTTP status. Internal errors are
// logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	env := Envelope{Message: apperr.PublicMessage(err)}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
		env.Errors = apperr.Problems(err)
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnauthenticated:
		status = http.StatusUnauthorized
	default:
		slog.ErrorContext(r.Context(), "order request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, env)
}
