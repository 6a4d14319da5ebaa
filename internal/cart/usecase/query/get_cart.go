package query

import (
	"context"

	"github.com/tair/growshop/internal/cart/domain"
)

// GetCartQuery represents the query to read a visitor's cart
type GetCartQuery struct {
	VisitorID string
}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	repo domain.Repository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(repo domain.Repository) *GetCartHandler {
	return &GetCartHandler{repo: repo}
}

// Handle returns the current cart
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, q.VisitorID, func(s *domain.Store) error {
		state = s.State()
		return nil
	})
	return state, err
}
