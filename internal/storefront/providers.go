package storefront

import (
	"fmt"

	carthttp "github.com/tair/growshop/internal/cart/delivery/http"
	cartrepo "github.com/tair/growshop/internal/cart/repository"
	cartcommand "github.com/tair/growshop/internal/cart/usecase/command"
	cartquery "github.com/tair/growshop/internal/cart/usecase/query"
	cataloghttp "github.com/tair/growshop/internal/catalog/delivery/http"
	catalogquery "github.com/tair/growshop/internal/catalog/usecase/query"
	"github.com/tair/growshop/internal/clientstate"
	contenthttp "github.com/tair/growshop/internal/content/delivery/http"
	contentquery "github.com/tair/growshop/internal/content/usecase/query"
	orderhttp "github.com/tair/growshop/internal/order/delivery/http"
	orderdomain "github.com/tair/growshop/internal/order/domain"
	orderrepo "github.com/tair/growshop/internal/order/repository"
	ordercommand "github.com/tair/growshop/internal/order/usecase/command"
	orderquery "github.com/tair/growshop/internal/order/usecase/query"
	userhttp "github.com/tair/growshop/internal/user/delivery/http"
	userdomain "github.com/tair/growshop/internal/user/domain"
	userrepo "github.com/tair/growshop/internal/user/repository"
	usercommand "github.com/tair/growshop/internal/user/usecase/command"
	userquery "github.com/tair/growshop/internal/user/usecase/query"
	wishlisthttp "github.com/tair/growshop/internal/wishlist/delivery/http"
	wishlistrepo "github.com/tair/growshop/internal/wishlist/repository"
	wishlistcommand "github.com/tair/growshop/internal/wishlist/usecase/command"
	wishlistquery "github.com/tair/growshop/internal/wishlist/usecase/query"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/jsonstore"
	"github.com/tair/growshop/pkg/middleware"
)

// Redis key prefix for visitor state
const clientStateKeyPrefix = "growshop:"

// ProvideStore provides the JSON store rooted at the data directory
func ProvideStore(opts Options) *jsonstore.Store {
	return jsonstore.New(opts.DataDir)
}

// ProvideOrderRepository provides the order repository for the configured backend
func ProvideOrderRepository(opts Options, infra Infrastructure, store *jsonstore.Store) (orderdomain.OrderRepository, error) {
	switch opts.Backend {
	case "", BackendJSON:
		return orderrepo.NewOrderRepositoryWithTracing(orderrepo.NewJSONOrderRepository(store), BackendJSON), nil
	case BackendPostgres:
		if infra.DB == nil {
			return nil, fmt.Errorf("backend %q needs a database connection", opts.Backend)
		}
		return orderrepo.NewOrderRepositoryWithTracing(orderrepo.NewGormOrderRepository(infra.DB), BackendPostgres), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

// ProvideUserRepository provides the user repository for the configured backend
func ProvideUserRepository(opts Options, infra Infrastructure, store *jsonstore.Store) (userdomain.UserRepository, error) {
	switch opts.Backend {
	case "", BackendJSON:
		return userrepo.NewUserRepositoryWithTracing(userrepo.NewJSONUserRepository(store), BackendJSON), nil
	case BackendPostgres:
		if infra.DB == nil {
			return nil, fmt.Errorf("backend %q needs a database connection", opts.Backend)
		}
		return userrepo.NewUserRepositoryWithTracing(userrepo.NewGormUserRepository(infra.DB), BackendPostgres), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

// ProvidePersister provides Redis persistence for carts and wishlists when
// Redis is configured, process memory otherwise
func ProvidePersister(infra Infrastructure) clientstate.Persister {
	if infra.Redis == nil {
		return clientstate.NewMemoryPersister()
	}
	return clientstate.NewRedisPersister(infra.Redis, clientStateKeyPrefix, clientstate.DefaultTTL)
}

// ProvideCartRepository provides the live cart registry
func ProvideCartRepository(persister clientstate.Persister, opts Options, infra Infrastructure) *cartrepo.RegistryCartRepository {
	return cartrepo.NewRegistryCartRepository(persister, opts.ClientStateIdle, infra.Registerer)
}

// ProvideWishlistRepository provides the live wishlist registry
func ProvideWishlistRepository(persister clientstate.Persister, opts Options, infra Infrastructure) *wishlistrepo.RegistryWishlistRepository {
	return wishlistrepo.NewRegistryWishlistRepository(persister, opts.ClientStateIdle, infra.Registerer)
}

// ProvideSessionManager provides the session cookie manager
func ProvideSessionManager(opts Options) *auth.SessionManager {
	return auth.NewSessionManager(opts.SessionSecret, opts.SecureCookies)
}

// ProvideRateLimiter provides the Redis rate limiter, inert without Redis
func ProvideRateLimiter(opts Options, infra Infrastructure) *middleware.RateLimiter {
	return middleware.NewRateLimiter(infra.Redis, opts.RateLimit, opts.RateWindow)
}

// ProvideResponseCache provides the Redis cache of the public read-only
// routes, inert without Redis
func ProvideResponseCache(opts Options, infra Infrastructure) *middleware.ResponseCache {
	return middleware.NewResponseCache(infra.Redis, opts.CacheTTL,
		"/api/products", "/api/categories", "/api/brands", "/api/reviews", "/api/blog")
}

// ProvidePlaceOrderHandler provides the place order command handler
func ProvidePlaceOrderHandler(
	repo orderdomain.OrderRepository,
	products ordercommand.ProductLookup,
	opts Options,
	infra Infrastructure,
) *ordercommand.PlaceOrderHandler {
	return ordercommand.NewPlaceOrderHandler(repo, products, infra.Publisher, opts.StockPolicy, infra.Registerer)
}

// HTTP handler providers

func ProvideCatalogHandler(
	list *catalogquery.ListProductsHandler,
	get *catalogquery.GetProductHandler,
	categories *catalogquery.ListCategoriesHandler,
	brands *catalogquery.ListBrandsHandler,
	infra Infrastructure,
) *cataloghttp.CatalogHandler {
	return cataloghttp.NewCatalogHandler(list, get, categories, brands, infra.Registerer)
}

func ProvideOrderHandler(
	place *ordercommand.PlaceOrderHandler,
	myOrders *orderquery.GetMyOrdersHandler,
	infra Infrastructure,
) *orderhttp.OrderHandler {
	return orderhttp.NewOrderHandler(place, myOrders, infra.Registerer)
}

func ProvideUserHandler(
	register *usercommand.RegisterUserHandler,
	login *usercommand.LoginUserHandler,
	getUser *userquery.GetUserHandler,
	sessions *auth.SessionManager,
	infra Infrastructure,
) *userhttp.UserHandler {
	return userhttp.NewUserHandler(register, login, getUser, sessions, infra.Registerer)
}

func ProvideCartHandler(
	add *cartcommand.AddItemHandler,
	update *cartcommand.UpdateItemHandler,
	checkout *cartcommand.CheckoutHandler,
	get *cartquery.GetCartHandler,
	opts Options,
	infra Infrastructure,
) *carthttp.CartHandler {
	return carthttp.NewCartHandler(add, update, checkout, get, opts.SecureCookies, infra.Registerer)
}

func ProvideWishlistHandler(
	update *wishlistcommand.UpdateWishlistHandler,
	get *wishlistquery.GetWishlistHandler,
	opts Options,
	infra Infrastructure,
) *wishlisthttp.WishlistHandler {
	return wishlisthttp.NewWishlistHandler(update, get, opts.SecureCookies, infra.Registerer)
}

func ProvideContentHandler(
	reviews *contentquery.ListReviewsHandler,
	rating *contentquery.GetRatingHandler,
	blog *contentquery.BlogHandler,
	infra Infrastructure,
) *contenthttp.ContentHandler {
	return contenthttp.NewContentHandler(reviews, rating, blog, infra.Registerer)
}
