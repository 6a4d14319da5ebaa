package query

import (
	"context"

	"github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/catalog/filter"
)

// ListCategoriesHandler returns categories in file order
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context) []domain.Category {
	return h.repo.FindAll(ctx)
}

// ListBrandsHandler returns the brand selector values of the shop page
type ListBrandsHandler struct {
	repo domain.ProductRepository
}

// NewListBrandsHandler creates a new list brands handler
func NewListBrandsHandler(repo domain.ProductRepository) *ListBrandsHandler {
	return &ListBrandsHandler{repo: repo}
}

// Handle executes the list brands query
func (h *ListBrandsHandler) Handle(ctx context.Context) []string {
	return filter.Brands(h.repo.FindAll(ctx))
}
