package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/safar/go-inventory/internal/database"
	"github.com/safar/go-inventory/internal/store"
)

// Handlers translates form submissions into store calls and renders the
// results as HTML. Repository failures surface as plain-text responses.
type Handlers struct {
	inv Inventory
	db  Pinger
}

func NewHandlers(inv Inventory, db Pinger) *Handlers {
	return &Handlers{inv: inv, db: db}
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, "index.html", nil)
}

func (h *Handlers) AddProductForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "add_product.html", nil)
}

func (h *Handlers) AddProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		respondError(w, r, "adding the product", err)
		return
	}

	product, err := h.inv.CreateProduct(r.Context(), form.Name, form.Description, form.Price, form.Stock)
	if err != nil {
		respondError(w, r, "adding the product", err)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	http.Redirect(w, r, "/view_products", http.StatusSeeOther)
}

func (h *Handlers) ViewProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.inv.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, "fetching products", err)
		return
	}

	render(w, r, "view_products.html", products)
}

func (h *Handlers) AddOrderForm(w http.ResponseWriter, r *http.Request) {
	products, err := h.inv.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, "fetching products", err)
		return
	}

	render(w, r, "add_order.html", products)
}

func (h *Handlers) AddOrder(w http.ResponseWriter, r *http.Request) {
	form, err := parseOrderForm(r)
	if err != nil {
		respondError(w, r, "adding the order", err)
		return
	}

	order, err := h.inv.PlaceOrder(r.Context(), form.ProductID, form.Quantity)
	if err != nil {
		respondError(w, r, "adding the order", err)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("order_id", order.ID).
		Int64("product_id", order.ProductID).
		Int("quantity", order.Quantity).
		Str("total_amount", order.TotalAmount.String()).
		Msg("order placed")

	http.Redirect(w, r, "/view_orders", http.StatusSeeOther)
}

func (h *Handlers) ViewOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.inv.ListOrders(r.Context())
	if err != nil {
		respondError(w, r, "fetching orders", err)
		return
	}

	render(w, r, "view_orders.html", orders)
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// respondError maps store and form failures onto plain-text responses. The
// two domain outcomes keep the wording users of the original screens expect.
func respondError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var formErr *FormError

	switch {
	case errors.Is(err, database.ErrProductNotFound):
		http.Error(w, "Product not found.", http.StatusNotFound)
	case errors.Is(err, database.ErrInsufficientStock):
		http.Error(w, "Insufficient stock for this order.", http.StatusConflict)
	case errors.As(err, &formErr):
		http.Error(w, formErr.Message, http.StatusBadRequest)
	case errors.Is(err, store.ErrEmptyName),
		errors.Is(err, store.ErrNegativePrice),
		errors.Is(err, store.ErrNegativeStock),
		errors.Is(err, store.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("action", action).Msg("store operation failed")
		http.Error(w, fmt.Sprintf("An unexpected error occurred while %s: %v", action, err), http.StatusInternalServerError)
	}
}
