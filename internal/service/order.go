package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"food-agent/internal/domain"
	"food-agent/internal/logger"
	"food-agent/internal/repository"
	"food-agent/internal/sessions"
)

const orderNumberAttempts = 5

type CompletedOrder struct {
	OrderNumber string
	Total       float64
	Items       []sessions.Line
}

type OrderService struct {
	store   sessions.Store
	menu    repository.MenuRepositoryInterface
	orders  repository.OrderRepositoryInterface
	kitchen KitchenPublisher
	lg      *logger.Logger

	// overridable in tests
	newOrderNumber func() string
}

func NewOrderService(store sessions.Store, menu repository.MenuRepositoryInterface,
	orders repository.OrderRepositoryInterface, kitchen KitchenPublisher, lg *logger.Logger) *OrderService {
	return &OrderService{
		store:          store,
		menu:           menu,
		orders:         orders,
		kitchen:        kitchen,
		lg:             lg,
		newOrderNumber: randomOrderNumber,
	}
}

// randomOrderNumber draws a 6-digit number, 100000-999999 inclusive.
func randomOrderNumber() string {
	return strconv.Itoa(rand.Intn(900000) + 100000)
}

// Complete turns the conversation's cart into persisted order rows, one per
// cart line, all under one order number. Every line must resolve against the
// menu before anything is written; a failed line aborts the whole checkout
// and leaves the cart untouched. The cart is cleared only after the commit.
func (s *OrderService) Complete(ctx context.Context, conversationID string) (CompletedOrder, error) {
	cart, ok, err := s.store.Snapshot(ctx, conversationID)
	if err != nil {
		return CompletedOrder{}, fmt.Errorf("read cart: %w", err)
	}
	if !ok {
		return CompletedOrder{}, domain.ErrNotFound
	}

	resolved := make([]domain.MenuItem, 0, len(cart))
	for _, line := range cart {
		item, found, err := s.menu.FindByNameFragment(ctx, line.Name)
		if err != nil {
			return CompletedOrder{}, fmt.Errorf("menu lookup: %w", err)
		}
		if !found {
			return CompletedOrder{}, &domain.UnknownItemError{Name: line.Name}
		}
		resolved = append(resolved, item)
	}

	number, err := s.allocateOrderNumber(ctx)
	if err != nil {
		return CompletedOrder{}, err
	}

	now := time.Now().UTC()
	total := 0.0
	rows := make([]domain.Order, 0, len(cart))
	for i, line := range cart {
		linePrice := resolved[i].Price * float64(line.Quantity)
		total += linePrice
		rows = append(rows, domain.Order{
			OrderNumber: number,
			MenuItemID:  resolved[i].ID,
			Status:      domain.StatusPreparing,
			Quantity:    line.Quantity,
			TotalPrice:  linePrice,
			CreatedAt:   now,
		})
	}

	if err := s.orders.CreateOrderTx(ctx, rows); err != nil {
		return CompletedOrder{}, fmt.Errorf("persist order %s: %w", number, err)
	}

	if err := s.store.Clear(ctx, conversationID); err != nil {
		// The order is durable; a stale cart is the lesser problem.
		s.lg.Error("cart_clear_failed", err, map[string]any{"conversation": conversationID})
	}

	s.publishToKitchen(ctx, number, cart, resolved, total)

	return CompletedOrder{OrderNumber: number, Total: total, Items: cart}, nil
}

// allocateOrderNumber re-rolls on collision with an existing checkout. The
// range holds 900k values, so retries only matter on a nearly full table.
func (s *OrderService) allocateOrderNumber(ctx context.Context) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		number := s.newOrderNumber()
		_, exists, err := s.orders.FindByOrderNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("order number check: %w", err)
		}
		if !exists {
			return number, nil
		}
	}
	return "", fmt.Errorf("no free order number after %d attempts", orderNumberAttempts)
}

func (s *OrderService) publishToKitchen(ctx context.Context, number string, cart []sessions.Line, resolved []domain.MenuItem, total float64) {
	if s.kitchen == nil {
		return
	}
	msg := domain.KitchenOrderMessage{
		OrderNumber: number,
		TotalAmount: total,
		Priority:    orderPriority(total),
	}
	for i, line := range cart {
		msg.Items = append(msg.Items, domain.KitchenItem{
			Name:     resolved[i].Name,
			Quantity: line.Quantity,
			Price:    resolved[i].Price,
		})
	}
	if err := s.kitchen.PublishOrder(ctx, msg); err != nil {
		// Order rows are already committed; the kitchen can still pick the
		// order up from the table.
		s.lg.Error("kitchen_publish_failed", err, map[string]any{"order_number": number})
		return
	}
	s.lg.Debug("kitchen_published", map[string]any{"order_number": number, "priority": msg.Priority})
}

func orderPriority(total float64) int {
	switch {
	case total >= 100:
		return 10
	case total >= 50:
		return 5
	default:
		return 1
	}
}
