package query

import (
	"context"

	"github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/catalog/filter"
)

// MaxListLimit caps the number of products a single list request returns
const MaxListLimit = 50

// ListProductsQuery represents the query to list products.
// Nil pointers and empty strings mean "no filter".
type ListProductsQuery struct {
	CategoryID string
	Brand      string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	Featured   bool
	New        bool
	// Limit is clamped to [1, MaxListLimit]; nil returns every match.
	Limit *int
	// Pipeline runs after the server-side filters and before the limit.
	Pipeline filter.Criteria
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) []domain.Product {
	products := make([]domain.Product, 0)
	for _, p := range h.repo.FindAll(ctx) {
		if query.matches(p) {
			products = append(products, p)
		}
	}

	products = filter.Apply(products, query.Pipeline)

	if query.Limit != nil {
		if limit := ClampLimit(*query.Limit); len(products) > limit {
			products = products[:limit]
		}
	}
	return products
}

func (q ListProductsQuery) matches(p domain.Product) bool {
	if q.CategoryID != "" && p.CategoryID != q.CategoryID {
		return false
	}
	if q.Brand != "" && p.Brand != q.Brand {
		return false
	}
	if q.MinPrice != nil && p.EffectivePrice() < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.EffectivePrice() > *q.MaxPrice {
		return false
	}
	if q.Search != "" && !filter.MatchesSearch(p, q.Search) {
		return false
	}
	if q.Featured && !p.Featured {
		return false
	}
	if q.New && !p.New {
		return false
	}
	return true
}

// ClampLimit clamps a requested limit into [1, MaxListLimit]
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
