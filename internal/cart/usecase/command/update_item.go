package command

import (
	"context"

	"github.com/tair/growshop/internal/cart/domain"
)

// UpdateQuantityCommand sets the quantity of a cart item
type UpdateQuantityCommand struct {
	VisitorID string
	ProductID string
	Quantity  int
}

// RemoveItemCommand removes a cart item
type RemoveItemCommand struct {
	VisitorID string
	ProductID string
}

// ClearCartCommand empties a cart
type ClearCartCommand struct {
	VisitorID string
}

// UpdateItemHandler handles quantity changes, removals and clearing
type UpdateItemHandler struct {
	repo domain.Repository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.Repository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// UpdateQuantity sets the quantity; zero or less removes the item
func (h *UpdateItemHandler) UpdateQuantity(ctx context.Context, cmd UpdateQuantityCommand) (domain.State, error) {
	return h.apply(ctx, cmd.VisitorID, func(s *domain.Store) domain.State {
		return s.UpdateQuantity(cmd.ProductID, cmd.Quantity)
	})
}

// Remove drops an item
func (h *UpdateItemHandler) Remove(ctx context.Context, cmd RemoveItemCommand) (domain.State, error) {
	return h.apply(ctx, cmd.VisitorID, func(s *domain.Store) domain.State {
		return s.RemoveItem(cmd.ProductID)
	})
}

// Clear empties the cart
func (h *UpdateItemHandler) Clear(ctx context.Context, cmd ClearCartCommand) (domain.State, error) {
	return h.apply(ctx, cmd.VisitorID, func(s *domain.Store) domain.State {
		return s.Clear()
	})
}

func (h *UpdateItemHandler) apply(ctx context.Context, visitorID string, fn func(*domain.Store) domain.State) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, visitorID, func(s *domain.Store) error {
		state = fn(s)
		return nil
	})
	return state, err
}
