package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"food-agent/internal/domain"
)

type MenuRepositoryInterface interface {
	// FindByNameFragment matches fragment case-insensitively as a substring
	// of the item name. Tie-break: lowest id. Not-found is (zero, false, nil).
	FindByNameFragment(ctx context.Context, fragment string) (domain.MenuItem, bool, error)
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
}

type OrderRepositoryInterface interface {
	// CreateOrderTx inserts every row in one transaction: all or nothing.
	CreateOrderTx(ctx context.Context, rows []domain.Order) error
	// FindByOrderNumber returns any row of the checkout; all rows of one
	// checkout carry the same status.
	FindByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, bool, error)
}

type Repository struct {
	Menu   MenuRepositoryInterface
	Orders OrderRepositoryInterface
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Menu:   NewMenuRepository(pool),
		Orders: NewOrderRepository(pool),
	}
}
