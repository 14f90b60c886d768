// internal/domain/cart/store.go
package cart

import "sync"

// Store holds the in-progress line items for the session. State is
// in-memory only and lost on restart. All operations are total: acting on
// an absent product id is a silent no-op, never an error.
//
// The store is owned by the application context and handed to consumers
// explicitly; it is goroutine-safe so concurrent HTTP handlers can share it.
type Store struct {
	mu    sync.RWMutex
	items []LineItem
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// Add merges the item into the cart. If a line with the same product id
// already exists its quantity grows by qty, otherwise a new line is
// appended. Quantities below 1 are treated as 1.
func (s *Store) Add(item LineItem, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += qty
			return
		}
	}

	item.Quantity = qty
	s.items = append(s.items, item)
}

// Increment grows the quantity of the matching line by one. There is no
// upper bound.
func (s *Store) Increment(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity++
			return
		}
	}
}

// Decrement shrinks the quantity of the matching line by one, floored at 1.
// Reaching the floor never removes the line; removal is always explicit.
func (s *Store) Decrement(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			}
			return
		}
	}
}

// Remove deletes the matching line item.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the current line items. Callers own the copy and
// can mutate it freely without touching cart state.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of distinct line items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Total recomputes the cart total on every call. It is intentionally not
// cached: the item list is tiny and a cached field would need invalidation
// on every mutation.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// CalculateTotals returns the full totals breakdown for the current cart.
func (s *Store) CalculateTotals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totals Totals
	totals.ItemCount = len(s.items)
	for _, item := range s.items {
		totals.TotalQuantity += item.Quantity
		totals.TotalAmount += item.Subtotal()
	}
	return totals
}
