package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/catalog/repository"
	"github.com/tair/growshop/internal/catalog/usecase/query"
	"github.com/tair/growshop/pkg/jsonstore"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	dir := t.TempDir()
	products := `[
	  {"id":"1","slug":"maceta","name":{"es":"Maceta","ca":"Test","en":"Pot"},"price":20,"categoryId":"c1","brand":"Acme","stock":3,"featured":true},
	  {"id":"2","slug":"sustrato","name":{"es":"Sustrato","ca":"Substrat","en":"Substrate"},"price":50,"priceOffer":40,"categoryId":"c2","brand":"Bio","stock":0,"new":true},
	  {"id":"3","slug":"lampara","name":{"es":"Lámpara","ca":"Llum","en":"Lamp"},"price":150,"categoryId":"c1","brand":"Acme","stock":5,"new":true}
	]`
	categories := `[{"id":"c1","slug":"macetas","name":{"es":"Macetas","ca":"Testos","en":"Pots"},"order":1}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, repository.ProductsFile), []byte(products), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, repository.CategoriesFile), []byte(categories), 0o644))

	store := jsonstore.New(dir)
	productRepo := repository.NewJSONProductRepository(store)
	categoryRepo := repository.NewJSONCategoryRepository(store)

	h := NewCatalogHandler(
		query.NewListProductsHandler(productRepo),
		query.NewGetProductHandler(productRepo),
		query.NewListCategoriesHandler(categoryRepo),
		query.NewListBrandsHandler(productRepo),
		prometheus.NewRegistry(),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func get(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListProductsEndpoint(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		url      string
		expected []string
	}{
		{"all", "/api/products", []string{"1", "2", "3"}},
		{"category", "/api/products?categoryId=c1", []string{"1", "3"}},
		{"price bounds", "/api/products?minPrice=30&maxPrice=100", []string{"2"}},
		{"invalid number ignored", "/api/products?minPrice=abc", []string{"1", "2", "3"}},
		{"search", "/api/products?search=LAMP", []string{"3"}},
		{"featured", "/api/products?featured=true", []string{"1"}},
		{"flag must be literal true", "/api/products?featured=1", []string{"1", "2", "3"}},
		{"limit clamped up", "/api/products?limit=-3", []string{"1"}},
		{"limit clamped down", "/api/products?limit=500", []string{"1", "2", "3"}},
		{"bucket", "/api/products?price=under25", []string{"1"}},
		{"in stock sorted", "/api/products?inStock=true&sort=priceDesc", []string{"3", "1"}},
		{"empty result", "/api/products?brand=None", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.url)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, decodeProducts(t, rec))
		})
	}
}

func TestGetProductEndpoint(t *testing.T) {
	router := newRouter(t)

	rec := get(t, router, "/api/products/sustrato")
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "2", p.ID)
	require.NotNil(t, p.PriceOffer)
	assert.Equal(t, 40.0, *p.PriceOffer)

	rec = get(t, router, "/api/products/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"product not found"}`, rec.Body.String())
}

func TestCategoriesAndBrandsEndpoints(t *testing.T) {
	router := newRouter(t)

	rec := get(t, router, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "macetas", categories[0].Slug)

	rec = get(t, router, "/api/brands")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Acme","Bio"]`, rec.Body.String())
}
