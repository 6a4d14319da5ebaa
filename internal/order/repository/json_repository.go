package repository

import (
	"context"

	"github.com/tair/growshop/internal/order/domain"
	"github.com/tair/growshop/pkg/jsonstore"
)

// OrdersFile is the collection file for orders
const OrdersFile = "orders.json"

// JSONOrderRepository stores orders in orders.json
type JSONOrderRepository struct {
	orders *jsonstore.Collection[domain.Order]
}

// NewJSONOrderRepository creates an order repository on top of store
func NewJSONOrderRepository(store *jsonstore.Store) *JSONOrderRepository {
	return &JSONOrderRepository{
		orders: jsonstore.NewCollection[domain.Order](store, OrdersFile),
	}
}

// Create assigns the next ORD id under the collection lock and appends the order
func (r *JSONOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	_, err := r.orders.AppendWith(ctx, func(current []domain.Order) (domain.Order, error) {
		ids := make([]string, len(current))
		for i, o := range current {
			ids[i] = o.ID
		}
		order.ID = domain.NextOrderID(ids)
		return *order, nil
	})
	return err
}

// FindByID retrieves an order by id
func (r *JSONOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders.Find(ctx, func(o domain.Order) bool { return o.ID == id })
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &o, nil
}

// FindByUserID returns the orders of a user in placement order
func (r *JSONOrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.orders.Filter(ctx, func(o domain.Order) bool { return o.UserID == userID }), nil
}
