package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter mounts the application routes behind the shared middleware
// stack and exposes /healthz and /metrics alongside the HTML pages.
func NewRouter(log zerolog.Logger, h *Handlers) http.Handler {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(
		Recoverer(log),
		RequestID(log),
		Logging,
		metrics.Middleware,
	)

	r.Get("/", h.Home)
	r.Get("/add_product", h.AddProductForm)
	r.Post("/add_product", h.AddProduct)
	r.Get("/view_products", h.ViewProducts)
	r.Get("/add_order", h.AddOrderForm)
	r.Post("/add_order", h.AddOrder)
	r.Get("/view_orders", h.ViewOrders)

	r.Get("/healthz", h.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
