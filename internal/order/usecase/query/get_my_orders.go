package query

import (
	"context"
	"fmt"

	"github.com/tair/growshop/internal/order/domain"
)

// GetMyOrdersQuery represents the query to get the orders of the session user
type GetMyOrdersQuery struct {
	UserID string
}

// GetMyOrdersHandler handles get my orders query
type GetMyOrdersHandler struct {
	repo domain.OrderRepository
}

// NewGetMyOrdersHandler creates a new get my orders handler
func NewGetMyOrdersHandler(repo domain.OrderRepository) *GetMyOrdersHandler {
	return &GetMyOrdersHandler{repo: repo}
}

// Handle executes the query. Anonymous callers get an empty list; guest
// orders are never listed.
func (h *GetMyOrdersHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]domain.Order, error) {
	if query.UserID == "" || query.UserID == domain.GuestUserID {
		return []domain.Order{}, nil
	}

	orders, err := h.repo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}
