package service

import (
	"context"
	"fmt"

	"food-agent/internal/domain"
	"food-agent/internal/repository"
	"food-agent/internal/sessions"
)

type CartService struct {
	store sessions.Store
	menu  repository.MenuRepositoryInterface
}

func NewCartService(store sessions.Store, menu repository.MenuRepositoryInterface) *CartService {
	return &CartService{store: store, menu: menu}
}

// AddItems validates the parallel name/quantity lists against the menu and
// merges them into the conversation's cart. The cart keeps the raw names as
// the user said them, not the menu spelling. An empty batch is rejected as a
// quantity mismatch rather than accepted as a no-op: an add turn with no
// items means the slots were not captured, and the user needs the corrective
// prompt.
func (s *CartService) AddItems(ctx context.Context, conversationID string, names []string, quantities []float64) ([]sessions.Line, error) {
	if len(names) == 0 || len(names) != len(quantities) {
		return nil, domain.ErrQuantityMismatch
	}

	lines := make([]sessions.Line, 0, len(names))
	for i, name := range names {
		qty := int(quantities[i])
		if qty <= 0 {
			return nil, domain.ErrQuantityMismatch
		}
		_, found, err := s.menu.FindByNameFragment(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("menu lookup: %w", err)
		}
		if !found {
			return nil, &domain.UnknownItemError{Name: name}
		}
		lines = append(lines, sessions.Line{Name: name, Quantity: qty})
	}

	cart, err := s.store.Merge(ctx, conversationID, lines)
	if err != nil {
		return nil, fmt.Errorf("merge cart: %w", err)
	}
	return cart, nil
}

// RemoveItems deletes the named lines from the conversation's cart. Partial
// success is normal: removed and missing names come back side by side.
func (s *CartService) RemoveItems(ctx context.Context, conversationID string, names []string) (removed, missing []string, err error) {
	return s.store.Remove(ctx, conversationID, names)
}

// Show returns the current cart, ok=false when there is none.
func (s *CartService) Show(ctx context.Context, conversationID string) ([]sessions.Line, bool, error) {
	return s.store.Snapshot(ctx, conversationID)
}
