package query

import (
	"context"

	"github.com/tair/growshop/internal/wishlist/domain"
)

// GetWishlistQuery represents the query to read a visitor's wishlist
type GetWishlistQuery struct {
	VisitorID string
}

// GetWishlistHandler handles get wishlist query
type GetWishlistHandler struct {
	repo domain.Repository
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(repo domain.Repository) *GetWishlistHandler {
	return &GetWishlistHandler{repo: repo}
}

// Handle returns the current wishlist
func (h *GetWishlistHandler) Handle(ctx context.Context, q GetWishlistQuery) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, q.VisitorID, func(s *domain.Store) error {
		state = s.State()
		return nil
	})
	return state, err
}
