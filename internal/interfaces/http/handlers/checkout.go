// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// CheckoutHandler handles checkout endpoints: taking the snapshot and
// running the placement workflow.
type CheckoutHandler struct {
	checkout      *checkout.Service
	checkoutStore *checkout.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(svc *checkout.Service, store *checkout.Store) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:      svc,
		checkoutStore: store,
	}
}

// PlaceOrderRequest carries the shipping form fields. Field presence is
// validated by the workflow so failures come back per-field, the way the
// form renders them.
type PlaceOrderRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// BeginCheckout handles POST /checkout
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	snap, err := h.checkout.Begin()
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "There is no items in the cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to begin checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout started",
		"data":    snap,
	})
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	snap := h.checkoutStore.Current()
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout retrieved successfully",
		"data":    snap,
	})
}

// PlaceOrder handles POST /checkout/order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.checkout.PlaceOrder(order.ShippingDetails{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Invalid shipping details",
				"fields": verr.Fields,
			})
			return
		}
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "There is no items in the cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your order has been placed successfully!",
		"data":    placed,
	})
}
