package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-agent/internal/domain"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) CreateOrderTx(ctx context.Context, orders []domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, o := range orders {
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (order_number, menu_item_id, status, quantity, total_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, o.OrderNumber, o.MenuItemID, o.Status, o.Quantity, o.TotalPrice, o.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert order row for item %d: %w", o.MenuItemID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order tx: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, bool, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, order_number, menu_item_id, status, quantity, total_price, created_at
		FROM orders
		WHERE order_number = $1
		LIMIT 1
	`, orderNumber).Scan(&o.ID, &o.OrderNumber, &o.MenuItemID, &o.Status, &o.Quantity, &o.TotalPrice, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("find order %q: %w", orderNumber, err)
	}
	return o, true, nil
}
