package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
)

type stubSource struct {
	products []product.Product
	err      error
}

func (s *stubSource) Products(_ context.Context) ([]product.Product, error) {
	return s.products, s.err
}

func (s *stubSource) Product(_ context.Context, id int) (*product.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (s *stubSource) Categories(_ context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"men's clothing", "electronics"}, nil
}

type env struct {
	router *gin.Engine
	cart   *cart.Store
	orders *order.Store
}

func newEnv(t *testing.T, source product.Source) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cartStore := cart.NewStore()
	checkoutStore := checkout.NewStore()
	orderStore := order.NewStore()

	var seq int
	newID := func() string {
		seq++
		return fmt.Sprintf("order-%d", seq)
	}
	now := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	deps := &routes.Deps{
		Config:   &config.Config{},
		Logger:   logger,
		Products: product.NewService(source),
		Cart:     cartStore,
		Checkout: checkoutStore,
		Workflow: checkout.NewService(cartStore, checkoutStore, orderStore, newID, now),
		Orders:   orderStore,
	}

	router := gin.New()
	routes.SetupRoutes(router.Group("/api/v1"), deps)

	return &env{router: router, cart: cartStore, orders: orderStore}
}

func defaultSource() *stubSource {
	return &stubSource{products: []product.Product{
		{ID: 1, Title: "Backpack", Price: 10, Category: "men's clothing", Image: "https://img/1.jpg", Rating: product.Rating{Rate: 3.9}},
		{ID: 2, Title: "T-Shirt", Price: 5, Category: "men's clothing", Rating: product.Rating{Rate: 4.1}},
	}}
}

func (e *env) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetProducts(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestGetProductsFiltered(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodGet, "/api/v1/products?title=shirt", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "T-Shirt", data[0].(map[string]interface{})["title"])
}

func TestGetProductsUpstreamDown(t *testing.T) {
	e := newEnv(t, &stubSource{err: product.ErrUnavailable})

	w := e.do(t, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetProductNotFound(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodGet, "/api/v1/products/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodGet, "/api/v1/products/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestAddToCartAggregates(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	items := e.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 30.0, e.cart.Total())
}

func TestAddToCartUnknownProduct(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 99, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, e.cart.Len())
}

func TestAddToCartInvalidPayload(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartQuantityEndpoints(t *testing.T) {
	e := newEnv(t, defaultSource())
	e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 1})

	e.do(t, http.MethodPost, "/api/v1/cart/items/1/increment", nil)
	assert.Equal(t, 2, e.cart.Items()[0].Quantity)

	e.do(t, http.MethodPost, "/api/v1/cart/items/1/decrement", nil)
	e.do(t, http.MethodPost, "/api/v1/cart/items/1/decrement", nil)
	assert.Equal(t, 1, e.cart.Items()[0].Quantity, "decrement floors at 1")

	w := e.do(t, http.MethodDelete, "/api/v1/cart/items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, e.cart.Len())
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodDelete, "/api/v1/cart/items/99", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, e.cart.Len())
}

func TestBeginCheckoutEmptyCart(t *testing.T) {
	e := newEnv(t, defaultSource())

	w := e.do(t, http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	e := newEnv(t, defaultSource())
	e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 2})
	e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 2, "quantity": 1})

	w := e.do(t, http.MethodPost, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 25.0, snap["total"])

	w = e.do(t, http.MethodGet, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/checkout/order", gin.H{
		"name":    "Jordan Doe",
		"address": "123 Main Street",
		"phone":   "+1234567890",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	placed := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "order-1", placed["id"])
	assert.Equal(t, 25.0, placed["total"])

	// Cart and snapshot are gone, the order is archived.
	assert.Equal(t, 0, e.cart.Len())
	assert.Equal(t, 1, e.orders.Len())

	w = e.do(t, http.MethodGet, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderValidation(t *testing.T) {
	e := newEnv(t, defaultSource())
	e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 1})

	w := e.do(t, http.MethodPost, "/api/v1/checkout/order", gin.H{"name": "Jordan Doe"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	fields := decode(t, w)["fields"].(map[string]interface{})
	assert.Contains(t, fields, "address")
	assert.Contains(t, fields, "phone")
	assert.NotContains(t, fields, "name")

	// Nothing moved.
	assert.Equal(t, 1, e.cart.Len())
	assert.Equal(t, 0, e.orders.Len())
}

func TestOrderEndpoints(t *testing.T) {
	e := newEnv(t, defaultSource())
	e.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 1})
	e.do(t, http.MethodPost, "/api/v1/checkout/order", gin.H{
		"name": "Jordan Doe", "address": "123 Main Street", "phone": "+1234567890",
	})

	w := e.do(t, http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]interface{}), 1)

	w = e.do(t, http.MethodGet, "/api/v1/orders/order-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/v1/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/orders/missing", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, e.orders.Len())

	w = e.do(t, http.MethodDelete, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, e.orders.Len())
}

