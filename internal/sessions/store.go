// Package sessions holds the per-conversation cart state.
package sessions

import (
	"context"
	"sync"

	"food-agent/internal/domain"
)

// Line is one cart entry: the item name exactly as the user said it, and a
// positive quantity. Lines keep first-insertion order. Two raw spellings of
// the same dish stay separate lines.
type Line struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Store keeps one open cart per conversation. Implementations serialize
// operations on the same conversation id; different conversations never
// block each other. An emptied cart is deleted, not kept as a zero-length
// cart.
type Store interface {
	// Merge adds the lines into the conversation's cart, creating it if
	// needed and summing quantities for repeated names. Returns the updated
	// snapshot.
	Merge(ctx context.Context, conversationID string, lines []Line) ([]Line, error)

	// Remove deletes the named lines. Names with no matching line are
	// reported in missing; partial success is fine. Returns
	// domain.ErrNotFound when the conversation has no open cart.
	Remove(ctx context.Context, conversationID string, names []string) (removed, missing []string, err error)

	// Snapshot returns a copy of the cart, or ok=false when there is none.
	Snapshot(ctx context.Context, conversationID string) (lines []Line, ok bool, err error)

	// Clear drops the conversation's cart. Idempotent.
	Clear(ctx context.Context, conversationID string) error
}

// MemoryStore is the default single-process Store: a keyed-lock map. Carts
// have no expiry here; an abandoned conversation keeps its cart until the
// process restarts.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Line
	// One entry per conversation ever seen. Entries are kept after the cart
	// is deleted: dropping a mutex while another goroutine is queued on it
	// would hand out a second mutex for the same conversation.
	locks map[string]*sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]Line),
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor hands out one mutex per conversation so same-conversation
// mutations serialize without stalling other conversations.
func (s *MemoryStore) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *MemoryStore) Merge(_ context.Context, conversationID string, lines []Line) ([]Line, error) {
	l := s.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	cart := s.carts[conversationID]
	s.mu.Unlock()

	cart = mergeLines(cart, lines)

	s.mu.Lock()
	s.carts[conversationID] = cart
	s.mu.Unlock()

	return copyLines(cart), nil
}

func (s *MemoryStore) Remove(_ context.Context, conversationID string, names []string) ([]string, []string, error) {
	l := s.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	cart, ok := s.carts[conversationID]
	s.mu.Unlock()
	if !ok {
		return nil, nil, domain.ErrNotFound
	}

	cart, removed, missing := removeLines(cart, names)

	s.mu.Lock()
	if len(cart) == 0 {
		delete(s.carts, conversationID)
	} else {
		s.carts[conversationID] = cart
	}
	s.mu.Unlock()

	return removed, missing, nil
}

func (s *MemoryStore) Snapshot(_ context.Context, conversationID string) ([]Line, bool, error) {
	// The copy must happen under the conversation lock: Merge and Remove
	// mutate the backing array in place.
	l := s.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	cart, ok := s.carts[conversationID]
	s.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	return copyLines(cart), true, nil
}

func (s *MemoryStore) Clear(_ context.Context, conversationID string) error {
	l := s.lockFor(conversationID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	delete(s.carts, conversationID)
	s.mu.Unlock()
	return nil
}

func mergeLines(cart, add []Line) []Line {
	for _, in := range add {
		merged := false
		for i := range cart {
			if cart[i].Name == in.Name {
				cart[i].Quantity += in.Quantity
				merged = true
				break
			}
		}
		if !merged {
			cart = append(cart, in)
		}
	}
	return cart
}

func removeLines(cart []Line, names []string) (kept []Line, removed, missing []string) {
	kept = cart
	for _, name := range names {
		found := false
		for i := range kept {
			if kept[i].Name == name {
				kept = append(kept[:i], kept[i+1:]...)
				found = true
				break
			}
		}
		if found {
			removed = append(removed, name)
		} else {
			missing = append(missing, name)
		}
	}
	return kept, removed, missing
}

func copyLines(cart []Line) []Line {
	out := make([]Line, len(cart))
	copy(out, cart)
	return out
}
