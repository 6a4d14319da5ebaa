package command

import (
	"context"

	catalog "github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/wishlist/domain"
)

// ProductLookup resolves catalog products by id
type ProductLookup interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
}

// WishlistCommand targets one product in a visitor's wishlist
type WishlistCommand struct {
	VisitorID string
	ProductID string
}

// UpdateWishlistHandler handles wishlist mutations
type UpdateWishlistHandler struct {
	repo     domain.Repository
	products ProductLookup
}

// NewUpdateWishlistHandler creates a new wishlist command handler
func NewUpdateWishlistHandler(repo domain.Repository, products ProductLookup) *UpdateWishlistHandler {
	return &UpdateWishlistHandler{repo: repo, products: products}
}

// Add likes a product, capturing a catalog snapshot. Unknown products fail
// with catalog.ErrProductNotFound.
func (h *UpdateWishlistHandler) Add(ctx context.Context, cmd WishlistCommand) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, cmd.VisitorID, func(s *domain.Store) error {
		if s.Has(cmd.ProductID) {
			state = s.State()
			return nil
		}
		product, err := h.products.FindByID(ctx, cmd.ProductID)
		if err != nil {
			return err
		}
		state = s.Add(product.ID, product)
		return nil
	})
	return state, err
}

// Remove unlikes a product. Removing a product that is not liked is a no-op.
func (h *UpdateWishlistHandler) Remove(ctx context.Context, cmd WishlistCommand) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, cmd.VisitorID, func(s *domain.Store) error {
		state = s.Remove(cmd.ProductID)
		return nil
	})
	return state, err
}

// Toggle removes a liked product or likes an unliked one. A product that has
// left the catalog can still be toggled off.
func (h *UpdateWishlistHandler) Toggle(ctx context.Context, cmd WishlistCommand) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, cmd.VisitorID, func(s *domain.Store) error {
		if s.Has(cmd.ProductID) {
			state = s.Toggle(cmd.ProductID, nil)
			return nil
		}
		product, err := h.products.FindByID(ctx, cmd.ProductID)
		if err != nil {
			return err
		}
		state = s.Toggle(product.ID, product)
		return nil
	})
	return state, err
}

// Clear empties the wishlist
func (h *UpdateWishlistHandler) Clear(ctx context.Context, visitorID string) (domain.State, error) {
	var state domain.State
	err := h.repo.With(ctx, visitorID, func(s *domain.Store) error {
		state = s.Clear()
		return nil
	})
	return state, err
}
