package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-agent/internal/domain"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) FindByNameFragment(ctx context.Context, fragment string) (domain.MenuItem, bool, error) {
	var it domain.MenuItem
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, image, price
		FROM food_items
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT 1
	`, fragment).Scan(&it.ID, &it.Name, &it.Description, &it.Image, &it.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MenuItem{}, false, nil
	}
	if err != nil {
		return domain.MenuItem{}, false, fmt.Errorf("find menu item %q: %w", fragment, err)
	}
	return it, true, nil
}

func (r *MenuRepository) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, image, price
		FROM food_items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Image, &it.Price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
