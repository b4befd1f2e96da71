package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/infra/httpx/middlewares"
)

func NewRouter(handler *Handler, verifier middlewares.Verifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachTracingMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)

	r.Route("/orders", func(r chi.Router) {
		r.Use(middlewares.Authenticate(verifier))

		r.Get("/", handler.ListOrders)
		r.Post("/", handler.CreateOrder)
		r.Get("/my-orders", handler.ListMyOrders)
		r.Get("/status/{status}", handler.ListByStatus)
		r.Get("/analytics/revenue", handler.TotalRevenue)
		r.Get("/analytics/count", handler.TotalCount)
		r.Get("/{id}", handler.GetOrderByID)
		r.Get("/{id}/history", handler.History)
		r.Put("/{id}/status", handler.UpdateStatus)
		r.Put("/{id}/cancel", handler.CancelOrder)
	})
	return r
}
