package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/order/domain"
	"github.com/tair/growshop/internal/order/usecase/command"
	"github.com/tair/growshop/internal/order/usecase/query"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/metrics"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	placeHandler  *command.PlaceOrderHandler
	myOrdersQuery *query.GetMyOrdersHandler
	metrics       *metrics.HTTPMetrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	placeHandler *command.PlaceOrderHandler,
	myOrdersQuery *query.GetMyOrdersHandler,
	reg prometheus.Registerer,
) *OrderHandler {
	return &OrderHandler{
		placeHandler:  placeHandler,
		myOrdersQuery: myOrdersQuery,
		metrics:       metrics.NewHTTPMetrics("orders", reg),
	}
}

// RegisterRoutes registers order routes. Both routes read the optional session.
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metrics.Wrap("/api/orders", h.PlaceOrder)).Methods("POST")
	router.HandleFunc("/api/orders", h.metrics.Wrap("/api/orders", h.GetMyOrders)).Methods("GET")
}

// PlaceOrderRequest is the checkout payload
type PlaceOrderRequest struct {
	ShippingAddress *domain.ShippingAddress `json:"shippingAddress"`
	Lines           []command.LineRequest   `json:"lines"`
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.PlaceOrderCommand{
		ShippingAddress: req.ShippingAddress,
		Lines:           req.Lines,
	}
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		cmd.UserID = s.UserID
	}

	order, err := h.placeHandler.Handle(r.Context(), cmd)
	if err != nil {
		status := StatusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error(r.Context()).Err(err).Msg("Failed to place order")
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"order": order})
}

// GetMyOrders handles GET /api/orders
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	q := query.GetMyOrdersQuery{}
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		q.UserID = s.UserID
	}

	orders, err := h.myOrdersQuery.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("user_id", q.UserID).Msg("Failed to list orders")
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// StatusForError maps order errors to HTTP status codes
func StatusForError(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrMissingOrderData),
		errors.Is(err, domain.ErrNoValidLines):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
