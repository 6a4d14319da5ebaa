package repository

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/clientstate"
	"github.com/tair/growshop/internal/wishlist/domain"
)

// KeyPrefix namespaces wishlist keys in the persister
const KeyPrefix = "wishlist:"

// RegistryWishlistRepository keeps live wishlists in a clientstate registry
type RegistryWishlistRepository struct {
	registry *clientstate.Registry[*domain.Store]
}

// NewRegistryWishlistRepository creates the wishlist repository
func NewRegistryWishlistRepository(persister clientstate.Persister, idle time.Duration, reg prometheus.Registerer) *RegistryWishlistRepository {
	open := func(ctx context.Context, visitorID string) (*domain.Store, func(), error) {
		obs, closeFn := clientstate.Open[domain.State](ctx, persister, KeyPrefix+visitorID)
		return domain.NewStoreFrom(obs), closeFn, nil
	}
	return &RegistryWishlistRepository{
		registry: clientstate.NewRegistry[*domain.Store]("wishlists", open, idle, reg),
	}
}

// With runs fn on the visitor's wishlist
func (r *RegistryWishlistRepository) With(ctx context.Context, visitorID string, fn func(*domain.Store) error) error {
	return r.registry.With(ctx, visitorID, fn)
}

// Run evicts idle wishlists every interval until ctx is done
func (r *RegistryWishlistRepository) Run(ctx context.Context, interval time.Duration) {
	r.registry.Run(ctx, interval)
}

// Close flushes every wishlist
func (r *RegistryWishlistRepository) Close() {
	r.registry.Close()
}
