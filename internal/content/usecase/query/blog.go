package query

import (
	"context"

	"github.com/tair/growshop/internal/content/domain"
)

// BlogHandler handles blog queries
type BlogHandler struct {
	repo domain.BlogRepository
}

// NewBlogHandler creates a new blog query handler
func NewBlogHandler(repo domain.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

// List returns all posts
func (h *BlogHandler) List(ctx context.Context) []domain.BlogPost {
	return h.repo.FindAll(ctx)
}

// Get returns the post with slug
func (h *BlogHandler) Get(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return h.repo.FindBySlug(ctx, slug)
}
