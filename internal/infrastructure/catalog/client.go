// internal/infrastructure/catalog/client.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/domain/product"
)

// Client is a read-only client for the upstream product API. Responses are
// kept in a short-revalidation-window cache so every page render does not
// turn into an upstream round trip.
type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
	logger  *logrus.Logger
}

// NewClient creates a catalog client. The cache may be nil to disable
// caching entirely (tests do this).
func NewClient(baseURL string, timeout time.Duration, cache Cache, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
	}
}

// Products returns the full product list.
func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	if err := c.fetch(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product returns a single product by id.
func (c *Client) Product(ctx context.Context, id int) (*product.Product, error) {
	var p product.Product
	if err := c.fetch(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		// The upstream answers missing ids with an empty body.
		return nil, product.ErrNotFound
	}
	return &p, nil
}

// Categories returns the category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.fetch(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// fetch resolves path against the cache first, then the upstream. Cache
// failures are logged and degrade to a direct fetch, never to an error.
func (c *Client) fetch(ctx context.Context, path string, dest interface{}) error {
	if c.cache != nil {
		if data, ok := c.cache.Get(ctx, path); ok {
			if err := json.Unmarshal(data, dest); err == nil {
				return nil
			}
			c.logger.WithField("path", path).Warn("Discarding undecodable catalog cache entry")
		}
	}

	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", product.ErrUnavailable, path, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, path, body); err != nil {
			c.logger.WithError(err).WithField("path", path).Warn("Failed to cache catalog response")
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", product.ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", product.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, product.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", product.ErrUnavailable, resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", product.ErrUnavailable, path, err)
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, product.ErrNotFound
	}
	return body, nil
}
