package command

import (
	"context"

	"github.com/tair/growshop/internal/cart/domain"
	order "github.com/tair/growshop/internal/order/domain"
	ordercommand "github.com/tair/growshop/internal/order/usecase/command"
	"github.com/tair/growshop/pkg/logger"
)

// OrderPlacer places orders
type OrderPlacer interface {
	Handle(ctx context.Context, cmd ordercommand.PlaceOrderCommand) (*order.Order, error)
}

// CheckoutCommand places an order from the visitor's cart
type CheckoutCommand struct {
	VisitorID       string
	UserID          string
	ShippingAddress *order.ShippingAddress
}

// CheckoutHandler turns a cart into an order
type CheckoutHandler struct {
	repo   domain.Repository
	orders OrderPlacer
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(repo domain.Repository, orders OrderPlacer) *CheckoutHandler {
	return &CheckoutHandler{repo: repo, orders: orders}
}

// Handle places the order and clears the cart only when the order was
// stored. Prices and stock come from the catalog, never the snapshots. The
// cart stays locked for the duration so a concurrent add cannot be lost.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	var placed *order.Order
	err := h.repo.With(ctx, cmd.VisitorID, func(s *domain.Store) error {
		items := s.Items()
		lines := make([]ordercommand.LineRequest, 0, len(items))
		for _, it := range items {
			lines = append(lines, ordercommand.LineRequest{ProductID: it.ProductID, Quantity: it.Quantity})
		}

		o, err := h.orders.Handle(ctx, ordercommand.PlaceOrderCommand{
			ShippingAddress: cmd.ShippingAddress,
			Lines:           lines,
			UserID:          cmd.UserID,
		})
		if err != nil {
			return err
		}

		s.Clear()
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Str("order_id", placed.ID).
		Str("visitor_id", cmd.VisitorID).
		Msg("Cart checked out")
	return placed, nil
}
