package storefront

import (
	"context"
	"time"

	carthttp "github.com/tair/growshop/internal/cart/delivery/http"
	cartrepo "github.com/tair/growshop/internal/cart/repository"
	cataloghttp "github.com/tair/growshop/internal/catalog/delivery/http"
	catalogrepo "github.com/tair/growshop/internal/catalog/repository"
	contenthttp "github.com/tair/growshop/internal/content/delivery/http"
	orderhttp "github.com/tair/growshop/internal/order/delivery/http"
	userhttp "github.com/tair/growshop/internal/user/delivery/http"
	wishlisthttp "github.com/tair/growshop/internal/wishlist/delivery/http"
	wishlistrepo "github.com/tair/growshop/internal/wishlist/repository"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/jsonstore"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/middleware"
)

// App is the assembled storefront
type App struct {
	opts  Options
	infra Infrastructure

	store     *jsonstore.Store
	products  *catalogrepo.JSONProductRepository
	carts     *cartrepo.RegistryCartRepository
	wishlists *wishlistrepo.RegistryWishlistRepository

	sessions      *auth.SessionManager
	rateLimiter   *middleware.RateLimiter
	responseCache *middleware.ResponseCache

	catalogHandler  *cataloghttp.CatalogHandler
	orderHandler    *orderhttp.OrderHandler
	userHandler     *userhttp.UserHandler
	cartHandler     *carthttp.CartHandler
	wishlistHandler *wishlisthttp.WishlistHandler
	contentHandler  *contenthttp.ContentHandler
}

// NewApp assembles the storefront from its parts
func NewApp(
	opts Options,
	infra Infrastructure,
	store *jsonstore.Store,
	products *catalogrepo.JSONProductRepository,
	carts *cartrepo.RegistryCartRepository,
	wishlists *wishlistrepo.RegistryWishlistRepository,
	sessions *auth.SessionManager,
	rateLimiter *middleware.RateLimiter,
	responseCache *middleware.ResponseCache,
	catalogHandler *cataloghttp.CatalogHandler,
	orderHandler *orderhttp.OrderHandler,
	userHandler *userhttp.UserHandler,
	cartHandler *carthttp.CartHandler,
	wishlistHandler *wishlisthttp.WishlistHandler,
	contentHandler *contenthttp.ContentHandler,
) *App {
	return &App{
		opts:            opts,
		infra:           infra,
		store:           store,
		products:        products,
		carts:           carts,
		wishlists:       wishlists,
		sessions:        sessions,
		rateLimiter:     rateLimiter,
		responseCache:   responseCache,
		catalogHandler:  catalogHandler,
		orderHandler:    orderHandler,
		userHandler:     userHandler,
		cartHandler:     cartHandler,
		wishlistHandler: wishlistHandler,
		contentHandler:  contentHandler,
	}
}

// VerifyCatalog checks the product data and logs every problem found. It
// returns the number of problems.
func (a *App) VerifyCatalog(ctx context.Context) int {
	return a.products.Verify(ctx)
}

// Start runs the background sweeps of the client state registries until ctx
// is done
func (a *App) Start(ctx context.Context) {
	interval := a.opts.ClientStateIdle / 2
	if interval <= 0 {
		interval = time.Minute
	}
	go a.carts.Run(ctx, interval)
	go a.wishlists.Run(ctx, interval)

	logger.Info(ctx).
		Dur("sweep_interval", interval).
		Msg("Client state sweeps started")
}

// Close flushes every live cart and wishlist
func (a *App) Close() {
	a.carts.Close()
	a.wishlists.Close()
}
