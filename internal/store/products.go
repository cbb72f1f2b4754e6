package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/safar/go-inventory/internal/database"
	"github.com/safar/go-inventory/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("product name must not be empty")
	ErrNegativePrice = errors.New("product price must not be negative")
	ErrNegativeStock = errors.New("product stock must not be negative")
)

// CreateProduct inserts a product and returns it with its assigned id.
// Inputs are re-checked here so a caller bypassing the form layer still
// cannot persist a negative price or stock.
func (s *Store) CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	product := &models.Product{}

	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock`

	err := s.db.QueryRowContext(ctx, query, name, description, price, stock).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		return nil, database.NewStorageError("create product", err)
	}

	return product, nil
}

// ListProducts returns a point-in-time snapshot of every product.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, stock
		FROM products
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.NewStorageError("list products", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
		)
		if err != nil {
			return nil, database.NewStorageError("scan product", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, database.NewStorageError("list products", fmt.Errorf("rows error: %w", err))
	}

	return products, nil
}
