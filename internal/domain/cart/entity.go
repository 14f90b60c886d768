// internal/domain/cart/entity.go
package cart

// LineItem represents one distinct product in the cart. The ProductID
// matches the catalog product id; prices are copied from the catalog at
// add time and trusted as-is.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
}

// Subtotal returns price times quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of unique items
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	TotalAmount   float64 `json:"total_amount"`   // Sum of price * quantity
}
