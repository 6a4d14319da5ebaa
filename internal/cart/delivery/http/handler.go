package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/cart/domain"
	"github.com/tair/growshop/internal/cart/usecase/command"
	"github.com/tair/growshop/internal/cart/usecase/query"
	catalog "github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/clientstate"
	orderhttp "github.com/tair/growshop/internal/order/delivery/http"
	order "github.com/tair/growshop/internal/order/domain"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/metrics"
)

// CartHandler handles HTTP requests for the visitor cart
type CartHandler struct {
	addHandler      *command.AddItemHandler
	updateHandler   *command.UpdateItemHandler
	checkoutHandler *command.CheckoutHandler
	getHandler      *query.GetCartHandler

	secureCookies bool
	metrics       *metrics.HTTPMetrics
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateItemHandler,
	checkoutHandler *command.CheckoutHandler,
	getHandler *query.GetCartHandler,
	secureCookies bool,
	reg prometheus.Registerer,
) *CartHandler {
	return &CartHandler{
		addHandler:      addHandler,
		updateHandler:   updateHandler,
		checkoutHandler: checkoutHandler,
		getHandler:      getHandler,
		secureCookies:   secureCookies,
		metrics:         metrics.NewHTTPMetrics("cart", reg),
	}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metrics.Wrap("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{productId}", h.metrics.Wrap("/api/cart/items/{productId}", h.UpdateItem)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{productId}", h.metrics.Wrap("/api/cart/items/{productId}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metrics.Wrap("/api/cart/checkout", h.Checkout)).Methods("POST")
}

// CartView is the cart as returned to clients
type CartView struct {
	Items      []domain.Item `json:"items"`
	TotalItems int           `json:"totalItems"`
	TotalPrice float64       `json:"totalPrice"`
}

// NewCartView renders s
func NewCartView(s domain.State) CartView {
	return CartView{
		Items:      s.ItemsCopy(),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
}

// AddItemRequest adds a product to the cart. Quantity defaults to 1 when
// omitted and must be positive otherwise.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// UpdateItemRequest sets an item quantity
type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}

// CheckoutRequest carries the shipping address for a cart checkout
type CheckoutRequest struct {
	ShippingAddress *order.ShippingAddress `json:"shippingAddress"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	visitor := clientstate.VisitorID(w, r, h.secureCookies)

	state, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{VisitorID: visitor})
	h.respondState(w, r, state, err)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		h.respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	quantity := domain.DefaultQuantity
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			h.respondError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}
		quantity = *req.Quantity
	}
	visitor := clientstate.VisitorID(w, r, h.secureCookies)

	state, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		VisitorID: visitor,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	h.respondState(w, r, state, err)
}

// UpdateItem handles PATCH /api/cart/items/{productId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		h.respondError(w, http.StatusBadRequest, "quantity is required")
		return
	}
	visitor := clientstate.VisitorID(w, r, h.secureCookies)

	state, err := h.updateHandler.UpdateQuantity(r.Context(), command.UpdateQuantityCommand{
		VisitorID: visitor,
		ProductID: mux.Vars(r)["productId"],
		Quantity:  *req.Quantity,
	})
	h.respondState(w, r, state, err)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	visitor := clientstate.VisitorID(w, r, h.secureCookies)

	state, err := h.updateHandler.Remove(r.Context(), command.RemoveItemCommand{
		VisitorID: visitor,
		ProductID: mux.Vars(r)["productId"],
	})
	h.respondState(w, r, state, err)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	visitor := clientstate.VisitorID(w, r, h.secureCookies)

	state, err := h.updateHandler.Clear(r.Context(), command.ClearCartCommand{VisitorID: visitor})
	h.respondState(w, r, state, err)
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	visitor := clientstate.VisitorID(w, r, h.secureCookies)

	cmd := command.CheckoutCommand{
		VisitorID:       visitor,
		ShippingAddress: req.ShippingAddress,
	}
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		cmd.UserID = s.UserID
	}

	placed, err := h.checkoutHandler.Handle(r.Context(), cmd)
	if err != nil {
		status := orderhttp.StatusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error(r.Context()).Err(err).Str("visitor_id", visitor).Msg("Checkout failed")
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"order": placed})
}

func (h *CartHandler) respondState(w http.ResponseWriter, r *http.Request, state domain.State, err error) {
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Cart operation failed")
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, NewCartView(state))
}

// respondJSON sends a JSON response
func (h *CartHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CartHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
