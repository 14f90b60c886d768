// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// ErrEmptyCart is returned when checkout is attempted with no line items.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries per-field messages for the shipping form. No
// store state is mutated when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid shipping details"
}

// IDGenerator produces a session-unique order identifier. Injected as a
// capability so tests can supply deterministic ids.
type IDGenerator func() string

// Clock returns the current time. Injected for the same reason.
type Clock func() time.Time

// Service composes the three state slices into the checkout workflow. The
// stores stay decoupled from each other; only this service knows the
// ordering of mutations.
type Service struct {
	cart     *cart.Store
	checkout *Store
	orders   *order.Store
	newID    IDGenerator
	now      Clock
}

// NewService creates a checkout service over the given stores. A nil id
// generator defaults to random UUIDs and a nil clock to UTC wall time.
func NewService(cartStore *cart.Store, checkoutStore *Store, orderStore *order.Store, newID IDGenerator, now Clock) *Service {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		cart:     cartStore,
		checkout: checkoutStore,
		orders:   orderStore,
		newID:    newID,
		now:      now,
	}
}

// Begin takes a checkout snapshot of the current cart contents, replacing
// any earlier snapshot.
func (s *Service) Begin() (Snapshot, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return Snapshot{}, ErrEmptyCart
	}
	return s.checkout.Take(items, s.now()), nil
}

// PlaceOrder runs the full placement workflow in fixed order:
// validate the shipping form, generate an id, build the order from a deep
// copy of the cart, register it, then clear the cart and the checkout
// snapshot. The order is registered before anything is cleared so a fault
// between steps can never lose an order that already emptied the cart.
func (s *Service) PlaceOrder(details order.ShippingDetails) (*order.Order, error) {
	if err := validateShipping(details); err != nil {
		return nil, err
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	o := order.Order{
		ID:       s.newID(),
		Name:     details.Name,
		Address:  details.Address,
		Phone:    details.Phone,
		Items:    items,
		Total:    s.cart.Total(),
		PlacedAt: s.now(),
	}

	s.orders.Place(o)
	s.cart.Clear()
	s.checkout.Clear()

	return &o, nil
}

func validateShipping(details order.ShippingDetails) error {
	fields := make(map[string]string)
	if details.Name == "" {
		fields["name"] = "Name is required"
	}
	if details.Address == "" {
		fields["address"] = "Address is required"
	}
	if details.Phone == "" {
		fields["phone"] = "Phone number is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
