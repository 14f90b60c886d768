// internal/domain/order/store.go
package order

import (
	"errors"
	"sync"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// ErrNotFound is returned by the read path when no order matches the id.
var ErrNotFound = errors.New("order not found")

// Store holds the orders placed during this session, newest last. It never
// reaches into the cart or checkout state itself: callers assemble a
// fully-formed Order and the store just appends it. That keeps the slices
// free of cross-store coupling and independently testable.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{}
}

// Place appends the order. The id is a caller contract: the caller
// generates it and guarantees session uniqueness. No cascade happens here;
// clearing the cart and checkout snapshot stays with the workflow.
func (s *Store) Place(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.Items = copyItems(o.Items)
	s.orders = append(s.orders, o)
}

// Delete removes the order with the matching id, silently doing nothing if
// it is absent.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return
		}
	}
}

// ClearAll empties the order list.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
}

// List returns a copy of all placed orders in placement order.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = o
		orders[i].Items = copyItems(o.Items)
	}
	return orders
}

// Get returns the order with the matching id.
func (s *Store) Get(id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			o.Items = copyItems(o.Items)
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// Len returns the number of placed orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func copyItems(items []cart.LineItem) []cart.LineItem {
	out := make([]cart.LineItem, len(items))
	copy(out, items)
	return out
}
