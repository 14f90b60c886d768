// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

// CartHandler handles cart endpoints. The cart is the session's working
// state; every response returns the full cart so the client never needs a
// follow-up read.
type CartHandler struct {
	cart     *cart.Store
	products *product.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, products *product.Service) *CartHandler {
	return &CartHandler{
		cart:     cartStore,
		products: products,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartBody(),
	})
}

// AddToCart handles POST /cart/items. The line item is built from the
// catalog entry, not from client-supplied prices.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	p, err := h.products.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load product",
		})
		return
	}

	h.cart.Add(cart.LineItem{
		ProductID: p.LineItemID(),
		Title:     p.Title,
		Price:     p.Price,
		Category:  p.Category,
		Image:     p.Image,
	}, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartBody(),
	})
}

// IncrementItem handles POST /cart/items/:id/increment
func (h *CartHandler) IncrementItem(c *gin.Context) {
	h.cart.Increment(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data":    h.cartBody(),
	})
}

// DecrementItem handles POST /cart/items/:id/decrement. Quantities floor
// at 1; dropping a line entirely is the remove endpoint's job.
func (h *CartHandler) DecrementItem(c *gin.Context) {
	h.cart.Decrement(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data":    h.cartBody(),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.Remove(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    h.cartBody(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    h.cartBody(),
	})
}

func (h *CartHandler) cartBody() gin.H {
	return gin.H{
		"items":  h.cart.Items(),
		"totals": h.cart.CalculateTotals(),
	}
}
