package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-agent/internal/domain"
	"food-agent/internal/sessions"
)

func TestAddItemsMergesAcrossTurns(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore()
	svc := NewCartService(store, &fakeMenu{items: indianMenu})

	cart, err := svc.AddItems(ctx, "conv", []string{"mango lassi"}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, []sessions.Line{{Name: "mango lassi", Quantity: 1}}, cart)

	cart, err = svc.AddItems(ctx, "conv",
		[]string{"mango lassi", "chole bhature"}, []float64{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []sessions.Line{
		{Name: "mango lassi", Quantity: 3},
		{Name: "chole bhature", Quantity: 1},
	}, cart)
}

func TestAddItemsQuantityMismatch(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore()
	svc := NewCartService(store, &fakeMenu{items: indianMenu})

	tests := []struct {
		desc  string
		names []string
		qty   []float64
	}{
		{"more names than quantities", []string{"mango lassi", "masala dosa"}, []float64{1}},
		{"no items at all", nil, nil},
		{"zero quantity", []string{"mango lassi"}, []float64{0}},
		{"negative quantity", []string{"mango lassi"}, []float64{-2}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := svc.AddItems(ctx, "conv", tt.names, tt.qty)
			assert.ErrorIs(t, err, domain.ErrQuantityMismatch)
		})
	}

	_, ok, err := store.Snapshot(ctx, "conv")
	require.NoError(t, err)
	assert.False(t, ok, "failed adds must not create a cart")
}

func TestAddItemsUnknownItemRejectsWholeBatch(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore()
	svc := NewCartService(store, &fakeMenu{items: indianMenu})

	_, err := svc.AddItems(ctx, "conv",
		[]string{"mango lassi", "sushi"}, []float64{1, 1})

	var unknown *domain.UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sushi", unknown.Name)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, ok, err := store.Snapshot(ctx, "conv")
	require.NoError(t, err)
	assert.False(t, ok, "valid lines of a rejected batch must not be merged")
}

func TestRemoveItemsPartialSuccess(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore()
	svc := NewCartService(store, &fakeMenu{items: indianMenu})

	_, err := svc.AddItems(ctx, "conv",
		[]string{"mango lassi", "chole bhature"}, []float64{3, 1})
	require.NoError(t, err)

	removed, missing, err := svc.RemoveItems(ctx, "conv", []string{"chole bhature", "samosa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"chole bhature"}, removed)
	assert.Equal(t, []string{"samosa"}, missing)

	cart, ok, err := svc.Show(ctx, "conv")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []sessions.Line{{Name: "mango lassi", Quantity: 3}}, cart)
}

func TestRemoveItemsWithoutCart(t *testing.T) {
	svc := NewCartService(sessions.NewMemoryStore(), &fakeMenu{items: indianMenu})
	_, _, err := svc.RemoveItems(context.Background(), "conv", []string{"mango lassi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowEmptyCart(t *testing.T) {
	svc := NewCartService(sessions.NewMemoryStore(), &fakeMenu{items: indianMenu})
	_, ok, err := svc.Show(context.Background(), "conv")
	require.NoError(t, err)
	assert.False(t, ok)
}
