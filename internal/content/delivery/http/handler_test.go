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

	"github.com/tair/growshop/internal/content/domain"
	"github.com/tair/growshop/internal/content/repository"
	"github.com/tair/growshop/internal/content/usecase/query"
	"github.com/tair/growshop/pkg/jsonstore"
)

const testReviews = `[
  {"id":"1","productId":"1","userId":"user1","userName":"Maria","rating":5,"title":"Excelente","comment":"ok","date":"2024-01-15","verified":true,"helpful":12},
  {"id":"2","productId":"1","userId":"user2","userName":"Carlos","rating":4,"title":"Muy bueno","comment":"ok","date":"2024-01-10","verified":true,"helpful":8},
  {"id":"3","productId":"1","userId":"user3","userName":"Ana","rating":5,"title":"Perfecto","comment":"ok","date":"2024-01-05","verified":false,"helpful":5},
  {"id":"4","productId":"2","userId":"user1","userName":"Maria","rating":3,"title":"Normal","comment":"ok","date":"2024-02-01","verified":true,"helpful":0}
]`

const testBlog = `[
  {"slug":"germinar","title":{"es":"Germinar","ca":"Germinar","en":"Germinate"},"excerpt":{"es":"e","ca":"e","en":"e"},"date":"2024-03-01","image":"/img/a.jpg","content":{"es":"c","ca":"c","en":"c"}}
]`

func newTestRouter(t *testing.T, files map[string]string) *mux.Router {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	store := jsonstore.New(dir)
	reviews := repository.NewJSONReviewRepository(store)
	h := NewContentHandler(
		query.NewListReviewsHandler(reviews),
		query.NewGetRatingHandler(reviews),
		query.NewBlogHandler(repository.NewJSONBlogRepository(store)),
		prometheus.NewRegistry(),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReviews(t *testing.T) {
	router := newTestRouter(t, map[string]string{repository.ReviewsFile: testReviews})

	var all []domain.Review
	require.NoError(t, json.Unmarshal(get(router, "/api/reviews").Body.Bytes(), &all))
	assert.Len(t, all, 4)

	var filtered []domain.Review
	require.NoError(t, json.Unmarshal(get(router, "/api/reviews?productId=2").Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "4", filtered[0].ID)

	rec := get(router, "/api/reviews?productId=404")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = get(router, "/api/reviews/summary?productId=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"productId":"1","averageRating":4.7,"totalReviews":3,
		"ratingDistribution":{"5":2,"4":1,"3":0,"2":0,"1":0}
	}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/reviews/summary").Code)
}

func TestReviewsMissingFile(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := get(router, "/api/reviews")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.JSONEq(t, `[]`, get(router, "/api/blog").Body.String())
}

func TestBlog(t *testing.T) {
	router := newTestRouter(t, map[string]string{repository.BlogFile: testBlog})

	var posts []domain.BlogPost
	require.NoError(t, json.Unmarshal(get(router, "/api/blog").Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Germinate", posts[0].Title.EN)

	rec := get(router, "/api/blog/germinar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"germinar"`)

	assert.Equal(t, http.StatusNotFound, get(router, "/api/blog/nope").Code)
}
