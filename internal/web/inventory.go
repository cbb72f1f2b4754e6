package web

import (
	"context"

	"github.com/safar/go-inventory/internal/models"
	"github.com/shopspring/decimal"
)

// Inventory is the store surface the handlers consume.
type Inventory interface {
	CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	PlaceOrder(ctx context.Context, productID int64, quantity int) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.OrderSummary, error)
}

// Pinger is the health-check surface. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}
