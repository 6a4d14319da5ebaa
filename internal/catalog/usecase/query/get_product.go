package query

import (
	"context"
	"fmt"

	"github.com/tair/growshop/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product by slug
type GetProductQuery struct {
	Slug string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	if query.Slug == "" {
		return nil, domain.ErrProductNotFound
	}

	product, err := h.repo.FindBySlug(ctx, query.Slug)
	if err != nil {
		return nil, fmt.Errorf("slug %q: %w", query.Slug, err)
	}

	return product, nil
}
