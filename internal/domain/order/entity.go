// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Order is a finalized, archived record of a completed checkout. Items are
// a value copy taken at placement time, so later cart mutations can never
// reach into a placed order. An order is immutable once placed; the only
// transitions are placement and deletion.
type Order struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone"`
	Items    []cart.LineItem `json:"items"`
	Total    float64         `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

// ShippingDetails carries the customer-entered shipping form fields. The
// form itself is rendered and pre-validated by the client; the checkout
// workflow re-checks presence before placing an order.
type ShippingDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
