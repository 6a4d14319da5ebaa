//go:build wireinject
// +build wireinject

package storefront

import (
	"github.com/google/wire"

	cartdomain "github.com/tair/growshop/internal/cart/domain"
	cartrepo "github.com/tair/growshop/internal/cart/repository"
	cartcommand "github.com/tair/growshop/internal/cart/usecase/command"
	cartquery "github.com/tair/growshop/internal/cart/usecase/query"
	catalogdomain "github.com/tair/growshop/internal/catalog/domain"
	catalogrepo "github.com/tair/growshop/internal/catalog/repository"
	catalogquery "github.com/tair/growshop/internal/catalog/usecase/query"
	contentdomain "github.com/tair/growshop/internal/content/domain"
	contentrepo "github.com/tair/growshop/internal/content/repository"
	contentquery "github.com/tair/growshop/internal/content/usecase/query"
	ordercommand "github.com/tair/growshop/internal/order/usecase/command"
	orderquery "github.com/tair/growshop/internal/order/usecase/query"
	usercommand "github.com/tair/growshop/internal/user/usecase/command"
	userquery "github.com/tair/growshop/internal/user/usecase/query"
	wishlistdomain "github.com/tair/growshop/internal/wishlist/domain"
	wishlistrepo "github.com/tair/growshop/internal/wishlist/repository"
	wishlistcommand "github.com/tair/growshop/internal/wishlist/usecase/command"
	wishlistquery "github.com/tair/growshop/internal/wishlist/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStore,
	catalogrepo.NewJSONProductRepository,
	catalogrepo.NewJSONCategoryRepository,
	wire.Bind(new(catalogdomain.ProductRepository), new(*catalogrepo.JSONProductRepository)),
	wire.Bind(new(catalogdomain.CategoryRepository), new(*catalogrepo.JSONCategoryRepository)),
	wire.Bind(new(ordercommand.ProductLookup), new(*catalogrepo.JSONProductRepository)),
	wire.Bind(new(cartcommand.ProductLookup), new(*catalogrepo.JSONProductRepository)),
	wire.Bind(new(wishlistcommand.ProductLookup), new(*catalogrepo.JSONProductRepository)),
	ProvideOrderRepository,
	ProvideUserRepository,
	contentrepo.NewJSONReviewRepository,
	contentrepo.NewJSONBlogRepository,
	wire.Bind(new(contentdomain.ReviewRepository), new(*contentrepo.JSONReviewRepository)),
	wire.Bind(new(contentdomain.BlogRepository), new(*contentrepo.JSONBlogRepository)),
	ProvidePersister,
	ProvideCartRepository,
	ProvideWishlistRepository,
	wire.Bind(new(cartdomain.Repository), new(*cartrepo.RegistryCartRepository)),
	wire.Bind(new(wishlistdomain.Repository), new(*wishlistrepo.RegistryWishlistRepository)),
)

var CommandHandlerSet = wire.NewSet(
	ProvidePlaceOrderHandler,
	wire.Bind(new(cartcommand.OrderPlacer), new(*ordercommand.PlaceOrderHandler)),
	usercommand.NewRegisterUserHandler,
	usercommand.NewLoginUserHandler,
	cartcommand.NewAddItemHandler,
	cartcommand.NewUpdateItemHandler,
	cartcommand.NewCheckoutHandler,
	wishlistcommand.NewUpdateWishlistHandler,
)

var QueryHandlerSet = wire.NewSet(
	catalogquery.NewListProductsHandler,
	catalogquery.NewGetProductHandler,
	catalogquery.NewListCategoriesHandler,
	catalogquery.NewListBrandsHandler,
	orderquery.NewGetMyOrdersHandler,
	userquery.NewGetUserHandler,
	cartquery.NewGetCartHandler,
	wishlistquery.NewGetWishlistHandler,
	contentquery.NewListReviewsHandler,
	contentquery.NewGetRatingHandler,
	contentquery.NewBlogHandler,
)

var HTTPSet = wire.NewSet(
	ProvideSessionManager,
	ProvideRateLimiter,
	ProvideResponseCache,
	ProvideCatalogHandler,
	ProvideOrderHandler,
	ProvideUserHandler,
	ProvideCartHandler,
	ProvideWishlistHandler,
	ProvideContentHandler,
)

var AllSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	HTTPSet,
	NewApp,
)

// InitializeApp assembles the storefront with all dependencies
func InitializeApp(opts Options, infra Infrastructure) (*App, error) {
	wire.Build(AllSet)
	return nil, nil
}
