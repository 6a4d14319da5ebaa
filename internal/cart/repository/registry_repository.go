package repository

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/cart/domain"
	"github.com/tair/growshop/internal/clientstate"
)

// KeyPrefix namespaces cart keys in the persister
const KeyPrefix = "cart:"

// RegistryCartRepository keeps live carts in a clientstate registry, each
// hydrated from and autosaved to the persister
type RegistryCartRepository struct {
	registry *clientstate.Registry[*domain.Store]
}

// NewRegistryCartRepository creates the cart repository. Carts idle for
// longer than idle are flushed and dropped from memory.
func NewRegistryCartRepository(persister clientstate.Persister, idle time.Duration, reg prometheus.Registerer) *RegistryCartRepository {
	open := func(ctx context.Context, visitorID string) (*domain.Store, func(), error) {
		obs, closeFn := clientstate.Open[domain.State](ctx, persister, KeyPrefix+visitorID)
		return domain.NewStoreFrom(obs), closeFn, nil
	}
	return &RegistryCartRepository{
		registry: clientstate.NewRegistry[*domain.Store]("carts", open, idle, reg),
	}
}

// With runs fn on the visitor's cart
func (r *RegistryCartRepository) With(ctx context.Context, visitorID string, fn func(*domain.Store) error) error {
	return r.registry.With(ctx, visitorID, fn)
}

// Run evicts idle carts every interval until ctx is done
func (r *RegistryCartRepository) Run(ctx context.Context, interval time.Duration) {
	r.registry.Run(ctx, interval)
}

// Close flushes every cart
func (r *RegistryCartRepository) Close() {
	r.registry.Close()
}
