// internal/domain/checkout/store.go
package checkout

import (
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Snapshot is an immutable point-in-time copy of cart contents taken when
// checkout is initiated, with the total computed over the copy.
type Snapshot struct {
	Items     []cart.LineItem `json:"items"`
	Total     float64         `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store holds at most one checkout snapshot: the most recent checkout
// attempt. Initiating checkout again overwrites it; placing an order
// clears it (the workflow drives both).
type Store struct {
	mu   sync.RWMutex
	last *Snapshot
}

// NewStore creates an empty checkout store.
func NewStore() *Store {
	return &Store{}
}

// Take copies the given items, computes their total, stamps the time and
// stores the result as the single current snapshot.
func (s *Store) Take(items []cart.LineItem, now time.Time) Snapshot {
	copied := make([]cart.LineItem, len(items))
	copy(copied, items)

	var total float64
	for _, item := range copied {
		total += item.Subtotal()
	}

	snap := Snapshot{
		Items:     copied,
		Total:     total,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.last = &snap
	s.mu.Unlock()

	return snap
}

// Current returns the current snapshot, or nil when none exists.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil
	}

	snap := *s.last
	snap.Items = make([]cart.LineItem, len(s.last.Items))
	copy(snap.Items, s.last.Items)
	return &snap
}

// Clear discards the current snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
}
