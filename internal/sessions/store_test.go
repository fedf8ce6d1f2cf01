package sessions

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-agent/internal/domain"
)

func TestMemoryStoreMergeSumsRepeatedNames(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	cart, err := s.Merge(ctx, "conv", []Line{{Name: "mango lassi", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, []Line{{Name: "mango lassi", Quantity: 1}}, cart)

	cart, err = s.Merge(ctx, "conv", []Line{
		{Name: "mango lassi", Quantity: 2},
		{Name: "chole bhature", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Name: "mango lassi", Quantity: 3},
		{Name: "chole bhature", Quantity: 1},
	}, cart)
}

func TestMemoryStoreRemovePartial(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Merge(ctx, "conv", []Line{
		{Name: "mango lassi", Quantity: 3},
		{Name: "chole bhature", Quantity: 1},
	})
	require.NoError(t, err)

	removed, missing, err := s.Remove(ctx, "conv", []string{"chole bhature", "samosa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"chole bhature"}, removed)
	assert.Equal(t, []string{"samosa"}, missing)

	cart, ok, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Line{{Name: "mango lassi", Quantity: 3}}, cart)
}

func TestMemoryStoreRemoveLastLineDeletesCart(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Merge(ctx, "conv", []Line{{Name: "mango lassi", Quantity: 1}})
	require.NoError(t, err)

	removed, missing, err := s.Remove(ctx, "conv", []string{"mango lassi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mango lassi"}, removed)
	assert.Empty(t, missing)

	_, ok, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	assert.False(t, ok, "emptied cart must be deleted, not kept empty")

	// removing again reports the cart as gone
	_, _, err = s.Remove(ctx, "conv", []string{"mango lassi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStoreRemoveWithoutCart(t *testing.T) {
	s := NewMemoryStore()
	_, _, err := s.Remove(context.Background(), "nobody", []string{"x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStoreClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Merge(ctx, "conv", []Line{{Name: "dosa", Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx, "conv"))
	require.NoError(t, s.Clear(ctx, "conv"))

	_, ok, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreConversationsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Merge(ctx, "a", []Line{{Name: "dosa", Quantity: 1}})
	require.NoError(t, err)
	_, err = s.Merge(ctx, "b", []Line{{Name: "idli", Quantity: 4}})
	require.NoError(t, err)

	cartA, ok, err := s.Snapshot(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Line{{Name: "dosa", Quantity: 1}}, cartA)

	_, _, err = s.Remove(ctx, "b", []string{"idli"})
	require.NoError(t, err)

	_, ok, err = s.Snapshot(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok, "removing b's cart must not touch a's")
}

func TestMemoryStoreConcurrentMergesSameConversation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_, _ = s.Merge(ctx, "conv", []Line{{Name: "dosa", Quantity: 1}})
			}
		}()
	}
	wg.Wait()

	cart, ok, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cart, 1)
	assert.Equal(t, goroutines*perGoroutine, cart[0].Quantity, "no merge may be lost")
}

func TestMemoryStoreSnapshotDuringConcurrentMerges(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Merge(ctx, "conv", []Line{{Name: "dosa", Quantity: 1}})
	require.NoError(t, err)

	const iterations = 2000

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_, _ = s.Merge(ctx, "conv", []Line{
				{Name: "dosa", Quantity: 1},
				{Name: "idli", Quantity: 1},
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			cart, ok, err := s.Snapshot(ctx, "conv")
			if err != nil || !ok {
				t.Errorf("snapshot failed mid-merge: ok=%v err=%v", ok, err)
				return
			}
			for _, line := range cart {
				if line.Name == "" || line.Quantity < 1 {
					t.Errorf("torn cart line observed: %+v", line)
					return
				}
			}
		}
	}()
	wg.Wait()

	cart, ok, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, cart, 2)
	assert.Equal(t, iterations+1, cart[0].Quantity)
	assert.Equal(t, iterations, cart[1].Quantity)
}

func TestMemoryStoreSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Merge(ctx, "conv", []Line{{Name: "dosa", Quantity: 1}})
	require.NoError(t, err)

	cart, _, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	cart[0].Quantity = 99

	again, _, err := s.Snapshot(ctx, "conv")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Quantity)
}
