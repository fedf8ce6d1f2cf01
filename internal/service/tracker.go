package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"food-agent/internal/repository"
)

type TrackerService struct {
	orders repository.OrderRepositoryInterface
}

func NewTrackerService(orders repository.OrderRepositoryInterface) *TrackerService {
	return &TrackerService{orders: orders}
}

// Track reports the status of the checkout behind orderID. The id arrives
// from the agent as a string or a number; anything unusable is simply
// not-found, never an error.
func (s *TrackerService) Track(ctx context.Context, orderID any) (string, bool, error) {
	number := normalizeOrderID(orderID)
	if number == "" {
		return "", false, nil
	}
	order, found, err := s.orders.FindByOrderNumber(ctx, number)
	if err != nil {
		return "", false, fmt.Errorf("track order %s: %w", number, err)
	}
	if !found {
		return "", false, nil
	}
	return order.Status, true, nil
}

func normalizeOrderID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}
