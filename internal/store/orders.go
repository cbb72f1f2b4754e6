package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safar/go-inventory/internal/database"
	"github.com/safar/go-inventory/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("order quantity must be positive")

// PlaceOrder creates an order for quantity units of the product, decrementing
// its stock in the same transaction. The decrement is a single conditional
// update guarded by stock >= quantity, so two orders racing over the last
// units cannot both succeed: the loser sees zero rows affected and the whole
// transaction rolls back, leaving stock untouched.
func (s *Store) PlaceOrder(ctx context.Context, productID int64, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	order := &models.Order{}

	err := database.WithTransaction(ctx, s.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		var price decimal.Decimal
		err := tx.QueryRowContext(ctx,
			`SELECT price FROM products WHERE id = $1`,
			productID).Scan(&price)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return database.ErrProductNotFound
			}
			return database.NewStorageError("look up product", err)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE products
			 SET stock = stock - $1
			 WHERE id = $2
			   AND stock >= $1`,
			quantity, productID)
		if err != nil {
			return database.NewStorageError("decrement stock", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return database.NewStorageError("decrement stock", fmt.Errorf("rows affected: %w", err))
		}
		if rowsAffected == 0 {
			return database.ErrInsufficientStock
		}

		totalAmount := price.Mul(decimal.NewFromInt(int64(quantity)))

		err = tx.QueryRowContext(ctx,
			`INSERT INTO orders (product_id, quantity, total_amount)
			 VALUES ($1, $2, $3)
			 RETURNING id, order_date`,
			productID, quantity, totalAmount).Scan(&order.ID, &order.OrderDate)
		if err != nil {
			return database.NewStorageError("create order", err)
		}

		order.ProductID = productID
		order.Quantity = quantity
		order.TotalAmount = totalAmount

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the order history joined to product names, most recent
// first. Id breaks ties for orders sharing a timestamp.
func (s *Store) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	query := `
		SELECT o.id, p.name, o.quantity, o.total_amount, o.order_date
		FROM orders o
		JOIN products p ON p.id = o.product_id
		ORDER BY o.order_date DESC, o.id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.NewStorageError("list orders", err)
	}
	defer rows.Close()

	var orders []models.OrderSummary
	for rows.Next() {
		var summary models.OrderSummary
		err := rows.Scan(
			&summary.OrderID,
			&summary.ProductName,
			&summary.Quantity,
			&summary.TotalAmount,
			&summary.OrderDate,
		)
		if err != nil {
			return nil, database.NewStorageError("scan order", err)
		}
		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, database.NewStorageError("list orders", fmt.Errorf("rows error: %w", err))
	}

	return orders, nil
}
