package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/catalog/filter"
	"github.com/tair/growshop/internal/catalog/usecase/query"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/metrics"
)

// CatalogHandler handles HTTP requests for products, categories and brands
type CatalogHandler struct {
	listHandler       *query.ListProductsHandler
	getHandler        *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler
	brandsHandler     *query.ListBrandsHandler

	metrics       *metrics.HTTPMetrics
	totalProducts prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler and registers its metrics with reg
func NewCatalogHandler(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
	brandsHandler *query.ListBrandsHandler,
	reg prometheus.Registerer,
) *CatalogHandler {
	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "growshop",
			Subsystem: "catalog",
			Name:      "products_listed",
			Help:      "Number of products returned by the last unfiltered catalog listing",
		},
	)
	reg.MustRegister(totalProducts)

	return &CatalogHandler{
		listHandler:       listHandler,
		getHandler:        getHandler,
		categoriesHandler: categoriesHandler,
		brandsHandler:     brandsHandler,
		metrics:           metrics.NewHTTPMetrics("catalog", reg),
		totalProducts:     totalProducts,
	}
}

// RegisterRoutes registers the public catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metrics.Wrap("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/{slug}", h.metrics.Wrap("/api/products/{slug}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/categories", h.metrics.Wrap("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/brands", h.metrics.Wrap("/api/brands", h.ListBrands)).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	products := h.listHandler.Handle(r.Context(), q)
	if q == (query.ListProductsQuery{}) {
		h.totalProducts.Set(float64(len(products)))
	}

	logger.Debug(r.Context()).
		Int("count", len(products)).
		Msg("Products listed")

	h.respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{slug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{Slug: slug})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		logger.Error(r.Context()).Err(err).Str("slug", slug).Msg("Failed to get product")
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.categoriesHandler.Handle(r.Context()))
}

// ListBrands handles GET /api/brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.brandsHandler.Handle(r.Context()))
}

// parseListQuery maps query parameters to a list query. Numbers that fail
// to parse are ignored; boolean flags are on only for the literal "true".
func parseListQuery(r *http.Request) query.ListProductsQuery {
	values := r.URL.Query()

	q := query.ListProductsQuery{
		CategoryID: values.Get("categoryId"),
		Brand:      values.Get("brand"),
		Search:     values.Get("search"),
		Featured:   values.Get("featured") == "true",
		New:        values.Get("new") == "true",
		Pipeline: filter.Criteria{
			Bucket:  filter.PriceBucket(values.Get("price")),
			OnSale:  values.Get("onSale") == "true",
			InStock: values.Get("inStock") == "true",
			Sort:    filter.SortKey(values.Get("sort")),
		},
	}

	if v, err := strconv.ParseFloat(values.Get("minPrice"), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(values.Get("maxPrice"), 64); err == nil {
		q.MaxPrice = &v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil {
		q.Limit = &v
	}

	return q
}

// respondJSON sends a JSON response
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
