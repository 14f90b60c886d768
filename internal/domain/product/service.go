// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("product not found")

// ErrUnavailable means the upstream catalog could not be reached or
// answered garbage. The read path renders it as a generic failed-to-load
// state; any retry is the source's caching policy, not the caller's.
var ErrUnavailable = errors.New("catalog unavailable")

// Source supplies catalog data. The HTTP client with its revalidation
// cache lives in internal/infrastructure/catalog.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id int) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// ListFilter narrows the product list. Zero values leave a dimension
// unfiltered; PriceMax <= 0 means unbounded.
type ListFilter struct {
	Title     string
	Category  string
	PriceMin  float64
	PriceMax  float64
	MinRating int
	Sort      string
}

// Sort options accepted by List.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating"
)

// Service handles the catalog read path: listing with filters, sorting,
// lookups and category enumeration. Filtering is a plain linear scan over
// the fetched list; the catalog is tens of items.
type Service struct {
	source Source
}

// NewService creates a new product service over the given source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// List returns the products matching the filter, sorted as requested.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	products, err := s.source.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if filter.matches(p) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, filter.Sort)
	return matched, nil
}

// Get returns a single product by its catalog id.
func (s *Service) Get(ctx context.Context, id int) (*Product, error) {
	p, err := s.source.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return p, nil
}

// Categories returns the distinct category names.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

func (f ListFilter) matches(p Product) bool {
	if f.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	// Ratings compare on the rounded star value, "N stars or higher".
	if f.MinRating > 0 && int(math.Round(p.Rating.Rate)) < f.MinRating {
		return false
	}
	return true
}

func sortProducts(products []Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	}
}
