package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/tair/growshop/internal/catalog/repository"
	"github.com/tair/growshop/internal/clientstate"
	"github.com/tair/growshop/internal/wishlist/repository"
	"github.com/tair/growshop/internal/wishlist/usecase/command"
	"github.com/tair/growshop/internal/wishlist/usecase/query"
	"github.com/tair/growshop/pkg/jsonstore"
)

const testProducts = `[
  {"id":"P1","slug":"p1","name":{"es":"Maceta","ca":"Test","en":"Pot"},"price":20,"categoryId":"c1","brand":"Acme","stock":3},
  {"id":"P2","slug":"p2","name":{"es":"Sustrato","ca":"Substrat","en":"Substrate"},"price":50,"priceOffer":40,"categoryId":"c1","brand":"Bio","stock":0}
]`

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalogrepo.ProductsFile), []byte(testProducts), 0o644))

	products := catalogrepo.NewJSONProductRepository(jsonstore.New(dir))
	reg := prometheus.NewRegistry()
	repo := repository.NewRegistryWishlistRepository(clientstate.NewMemoryPersister(), time.Hour, reg)

	h := NewWishlistHandler(
		command.NewUpdateWishlistHandler(repo, products),
		query.NewGetWishlistHandler(repo),
		false,
		reg,
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

type visitor struct {
	router *mux.Router
	cookie *http.Cookie
}

func (v *visitor) do(t *testing.T, method, path string) (int, WishlistView) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	v.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == clientstate.VisitorCookieName {
			v.cookie = c
		}
	}

	var view WishlistView
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	}
	return rec.Code, view
}

func TestWishlistEndpoints(t *testing.T) {
	v := &visitor{router: newTestRouter(t)}

	code, view := v.do(t, http.MethodGet, "/api/wishlist")
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, view.ProductIDs)
	assert.Equal(t, 0, view.Count)

	_, view = v.do(t, http.MethodPut, "/api/wishlist/P1")
	assert.Equal(t, []string{"P1"}, view.ProductIDs)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p1", view.Items[0].Slug)

	_, view = v.do(t, http.MethodPut, "/api/wishlist/P1")
	assert.Equal(t, 1, view.Count)

	_, view = v.do(t, http.MethodPost, "/api/wishlist/P2/toggle")
	require.NotNil(t, view.Active)
	assert.True(t, *view.Active)
	assert.Equal(t, []string{"P1", "P2"}, view.ProductIDs)

	_, view = v.do(t, http.MethodPost, "/api/wishlist/P2/toggle")
	require.NotNil(t, view.Active)
	assert.False(t, *view.Active)
	assert.Equal(t, []string{"P1"}, view.ProductIDs)

	_, view = v.do(t, http.MethodDelete, "/api/wishlist/P1")
	assert.Empty(t, view.ProductIDs)
	assert.Empty(t, view.Items)

	v.do(t, http.MethodPut, "/api/wishlist/P2")
	_, view = v.do(t, http.MethodDelete, "/api/wishlist")
	assert.Equal(t, 0, view.Count)

	code, _ = v.do(t, http.MethodPut, "/api/wishlist/P9")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = v.do(t, http.MethodPost, "/api/wishlist/P9/toggle")
	assert.Equal(t, http.StatusNotFound, code)
}
