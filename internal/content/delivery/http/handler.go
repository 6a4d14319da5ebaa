package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/content/domain"
	"github.com/tair/growshop/internal/content/usecase/query"
	"github.com/tair/growshop/pkg/metrics"
)

// ContentHandler serves reviews and blog posts
type ContentHandler struct {
	reviewsHandler *query.ListReviewsHandler
	ratingHandler  *query.GetRatingHandler
	blogHandler    *query.BlogHandler
	metrics        *metrics.HTTPMetrics
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	reviewsHandler *query.ListReviewsHandler,
	ratingHandler *query.GetRatingHandler,
	blogHandler *query.BlogHandler,
	reg prometheus.Registerer,
) *ContentHandler {
	return &ContentHandler{
		reviewsHandler: reviewsHandler,
		ratingHandler:  ratingHandler,
		blogHandler:    blogHandler,
		metrics:        metrics.NewHTTPMetrics("content", reg),
	}
}

// RegisterRoutes registers content routes
func (h *ContentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reviews", h.metrics.Wrap("/api/reviews", h.ListReviews)).Methods("GET")
	router.HandleFunc("/api/reviews/summary", h.metrics.Wrap("/api/reviews/summary", h.GetRating)).Methods("GET")
	router.HandleFunc("/api/blog", h.metrics.Wrap("/api/blog", h.ListPosts)).Methods("GET")
	router.HandleFunc("/api/blog/{slug}", h.metrics.Wrap("/api/blog/{slug}", h.GetPost)).Methods("GET")
}

// ListReviews handles GET /api/reviews
func (h *ContentHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews := h.reviewsHandler.Handle(r.Context(), query.ListReviewsQuery{
		ProductID: r.URL.Query().Get("productId"),
	})
	h.respondJSON(w, http.StatusOK, reviews)
}

// GetRating handles GET /api/reviews/summary
func (h *ContentHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	if productID == "" {
		h.respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	h.respondJSON(w, http.StatusOK, h.ratingHandler.Handle(r.Context(), productID))
}

// ListPosts handles GET /api/blog
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.blogHandler.List(r.Context()))
}

// GetPost handles GET /api/blog/{slug}
func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogHandler.Get(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, post)
}

// respondJSON sends a JSON response
func (h *ContentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *ContentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
