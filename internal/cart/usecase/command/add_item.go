package command

import (
	"context"

	"github.com/tair/growshop/internal/cart/domain"
	catalog "github.com/tair/growshop/internal/catalog/domain"
)

// ProductLookup resolves catalog products by id
type ProductLookup interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
}

// AddItemCommand represents the command to add a product to a cart
type AddItemCommand struct {
	VisitorID string
	ProductID string
	Quantity  int
}

// AddItemHandler handles the add item command
type AddItemHandler struct {
	repo     domain.Repository
	products ProductLookup
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.Repository, products ProductLookup) *AddItemHandler {
	return &AddItemHandler{repo: repo, products: products}
}

// Handle adds the product with a fresh catalog snapshot. Unknown products
// fail with catalog.ErrProductNotFound.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (domain.State, error) {
	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return domain.State{}, err
	}

	var state domain.State
	err = h.repo.With(ctx, cmd.VisitorID, func(s *domain.Store) error {
		state = s.AddItem(product.ID, cmd.Quantity, product)
		return nil
	})
	return state, err
}
