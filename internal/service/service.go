package service

import (
	"context"

	"food-agent/internal/domain"
	"food-agent/internal/logger"
	"food-agent/internal/repository"
	"food-agent/internal/sessions"
)

// KitchenPublisher hands a committed checkout to the kitchen. A nil
// publisher disables the handoff.
type KitchenPublisher interface {
	PublishOrder(ctx context.Context, msg domain.KitchenOrderMessage) error
}

type Service struct {
	Cart    *CartService
	Orders  *OrderService
	Tracker *TrackerService
}

func New(store sessions.Store, menu repository.MenuRepositoryInterface,
	orders repository.OrderRepositoryInterface, kitchen KitchenPublisher, lg *logger.Logger) *Service {
	return &Service{
		Cart:    NewCartService(store, menu),
		Orders:  NewOrderService(store, menu, orders, kitchen, lg),
		Tracker: NewTrackerService(orders),
	}
}
