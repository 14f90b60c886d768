// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// Deps bundles the application context handed to the HTTP layer. The
// stores are explicit dependencies, not hidden singletons; everything the
// handlers touch arrives through here.
type Deps struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Products *product.Service
	Cart     *cart.Store
	Checkout *checkout.Store
	Workflow *checkout.Service
	Orders   *order.Store
	Redis    *redis.Client
}

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, deps *Deps) {
	setupProductRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupCheckoutRoutes(rg, deps)
	setupOrderRoutes(rg, deps)
}

func setupProductRoutes(rg *gin.RouterGroup, deps *Deps) {
	productHandler := handlers.NewProductHandler(deps.Products)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		// Registered before /:id so "categories" is not parsed as an id.
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, deps *Deps) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Products)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.POST("/items/:id/increment", cartHandler.IncrementItem)
		cartGroup.POST("/items/:id/decrement", cartHandler.DecrementItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, deps *Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Workflow, deps.Checkout)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("", checkoutHandler.BeginCheckout)
		checkoutGroup.GET("", checkoutHandler.GetCheckout)
		checkoutGroup.POST("/order", checkoutHandler.PlaceOrder)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, deps *Deps) {
	orderHandler := handlers.NewOrderHandler(deps.Orders)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.DELETE("", orderHandler.ClearOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}
}
