// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-backend/internal/domain/order"
)

// OrderHandler handles the session order history endpoints.
type OrderHandler struct {
	orders *order.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Store) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.orders.List(),
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// DeleteOrder handles DELETE /orders/:id. Deleting an absent id is a
// no-op, matching the store semantics.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	h.orders.Delete(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted",
	})
}

// ClearOrders handles DELETE /orders
func (h *OrderHandler) ClearOrders(c *gin.Context) {
	h.orders.ClearAll()

	c.JSON(http.StatusOK, gin.H{
		"message": "All orders cleared",
	})
}
