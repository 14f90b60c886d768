// internal/domain/product/entity.go
package product

import "strconv"

// Product mirrors a catalog entry as served by the upstream product API.
// The backend never owns or mutates products; they are read-only input
// used to populate cart adds.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the upstream aggregate review score.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// LineItemID returns the product id in the string form used by the cart
// and order stores.
func (p Product) LineItemID() string {
	return strconv.Itoa(p.ID)
}
