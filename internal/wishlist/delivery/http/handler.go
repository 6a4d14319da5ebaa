package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalog "github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/clientstate"
	"github.com/tair/growshop/internal/wishlist/domain"
	"github.com/tair/growshop/internal/wishlist/usecase/command"
	"github.com/tair/growshop/internal/wishlist/usecase/query"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/metrics"
)

// WishlistHandler handles HTTP requests for the visitor wishlist
type WishlistHandler struct {
	updateHandler *command.UpdateWishlistHandler
	getHandler    *query.GetWishlistHandler

	secureCookies bool
	metrics       *metrics.HTTPMetrics
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(
	updateHandler *command.UpdateWishlistHandler,
	getHandler *query.GetWishlistHandler,
	secureCookies bool,
	reg prometheus.Registerer,
) *WishlistHandler {
	return &WishlistHandler{
		updateHandler: updateHandler,
		getHandler:    getHandler,
		secureCookies: secureCookies,
		metrics:       metrics.NewHTTPMetrics("wishlist", reg),
	}
}

// RegisterRoutes registers wishlist routes
func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wishlist", h.metrics.Wrap("/api/wishlist", h.GetWishlist)).Methods("GET")
	router.HandleFunc("/api/wishlist", h.metrics.Wrap("/api/wishlist", h.ClearWishlist)).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{productId}", h.metrics.Wrap("/api/wishlist/{productId}", h.Add)).Methods("PUT")
	router.HandleFunc("/api/wishlist/{productId}", h.metrics.Wrap("/api/wishlist/{productId}", h.Remove)).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{productId}/toggle", h.metrics.Wrap("/api/wishlist/{productId}/toggle", h.Toggle)).Methods("POST")
}

// WishlistView is the wishlist as returned to clients. Active is set by
// toggle and reports whether the product is liked afterwards.
type WishlistView struct {
	ProductIDs []string          `json:"productIds"`
	Items      []catalog.Product `json:"items"`
	Count      int               `json:"count"`
	Active     *bool             `json:"active,omitempty"`
}

// NewWishlistView renders s, always with non-nil lists
func NewWishlistView(s domain.State) WishlistView {
	v := WishlistView{ProductIDs: s.ProductIDs, Items: s.Items, Count: s.Len()}
	if v.ProductIDs == nil {
		v.ProductIDs = []string{}
	}
	if v.Items == nil {
		v.Items = []catalog.Product{}
	}
	return v
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	visitor := clientstate.VisitorID(w, r, h.secureCookies)
	state, err := h.getHandler.Handle(r.Context(), query.GetWishlistQuery{VisitorID: visitor})
	h.respondState(w, r, state, err, nil)
}

// Add handles PUT /api/wishlist/{productId}
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	state, err := h.updateHandler.Add(r.Context(), h.command(w, r))
	h.respondState(w, r, state, err, nil)
}

// Remove handles DELETE /api/wishlist/{productId}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	state, err := h.updateHandler.Remove(r.Context(), h.command(w, r))
	h.respondState(w, r, state, err, nil)
}

// Toggle handles POST /api/wishlist/{productId}/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	cmd := h.command(w, r)
	state, err := h.updateHandler.Toggle(r.Context(), cmd)
	active := state.Has(cmd.ProductID)
	h.respondState(w, r, state, err, &active)
}

// ClearWishlist handles DELETE /api/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	visitor := clientstate.VisitorID(w, r, h.secureCookies)
	state, err := h.updateHandler.Clear(r.Context(), visitor)
	h.respondState(w, r, state, err, nil)
}

func (h *WishlistHandler) command(w http.ResponseWriter, r *http.Request) command.WishlistCommand {
	return command.WishlistCommand{
		VisitorID: clientstate.VisitorID(w, r, h.secureCookies),
		ProductID: mux.Vars(r)["productId"],
	}
}

func (h *WishlistHandler) respondState(w http.ResponseWriter, r *http.Request, state domain.State, err error, active *bool) {
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Wishlist operation failed")
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	v := NewWishlistView(state)
	v.Active = active
	h.respondJSON(w, http.StatusOK, v)
}

// respondJSON sends a JSON response
func (h *WishlistHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *WishlistHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
