package command

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	catalog "github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/order/domain"
	"github.com/tair/growshop/pkg/logger"
)

// StockPolicy decides what happens to lines whose product has no stock
type StockPolicy int

const (
	// RejectOutOfStock drops lines for products with zero stock
	RejectOutOfStock StockPolicy = iota
	// ClampOutOfStock keeps them with quantity 1, matching the legacy storefront
	ClampOutOfStock
)

// LineRequest is one requested order line
type LineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderCommand represents the command to place an order
type PlaceOrderCommand struct {
	ShippingAddress *domain.ShippingAddress
	Lines           []LineRequest
	// UserID is the session user; empty means guest checkout.
	UserID string
}

// ProductLookup resolves catalog products by id
type ProductLookup interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
}

// PlaceOrderHandler handles the place order command
type PlaceOrderHandler struct {
	repo      domain.OrderRepository
	products  ProductLookup
	publisher domain.EventPublisher
	policy    StockPolicy
	now       func() time.Time

	ordersPlaced *prometheus.CounterVec
	orderValue   prometheus.Histogram
}

// NewPlaceOrderHandler creates a new place order handler. publisher may be nil.
func NewPlaceOrderHandler(
	repo domain.OrderRepository,
	products ProductLookup,
	publisher domain.EventPublisher,
	policy StockPolicy,
	reg prometheus.Registerer,
) *PlaceOrderHandler {
	ordersPlaced := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "growshop",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of orders placed",
		},
		[]string{"customer"},
	)
	orderValue := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "growshop",
			Subsystem: "orders",
			Name:      "value_euros",
			Help:      "Order totals in euros",
			Buckets:   []float64{10, 25, 50, 100, 200, 500, 1000},
		},
	)
	reg.MustRegister(ordersPlaced, orderValue)

	return &PlaceOrderHandler{
		repo:         repo,
		products:     products,
		publisher:    publisher,
		policy:       policy,
		now:          time.Now,
		ordersPlaced: ordersPlaced,
		orderValue:   orderValue,
	}
}

// Handle validates the request, resolves lines against the catalog and
// persists a pending order
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.ShippingAddress == nil || len(cmd.Lines) == 0 {
		return nil, domain.ErrMissingOrderData
	}

	address, err := cmd.ShippingAddress.Normalize()
	if err != nil {
		return nil, err
	}

	lines, total := h.resolveLines(ctx, cmd.Lines)
	if len(lines) == 0 {
		return nil, domain.ErrNoValidLines
	}

	userID := cmd.UserID
	if userID == "" {
		userID = domain.GuestUserID
	}

	order := &domain.Order{
		UserID:          userID,
		Lines:           lines,
		Total:           total,
		Status:          domain.StatusPending,
		ShippingAddress: address,
		CreatedAt:       h.now().UTC(),
	}

	if err := h.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	customer := "registered"
	if userID == domain.GuestUserID {
		customer = "guest"
	}
	h.ordersPlaced.WithLabelValues(customer).Inc()
	h.orderValue.Observe(order.Total)

	logger.Info(ctx).
		Str("order_id", order.ID).
		Str("user_id", order.UserID).
		Int("lines", len(order.Lines)).
		Float64("total", order.Total).
		Msg("Order placed")

	if h.publisher != nil {
		if err := h.publisher.PublishOrderPlaced(ctx, order); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("order_id", order.ID).
				Msg("Failed to publish order placed event")
		}
	}

	return order, nil
}

// resolveLines maps requested lines to priced order lines. Unknown products
// are skipped. The total is rounded to cents.
func (h *PlaceOrderHandler) resolveLines(ctx context.Context, requested []LineRequest) ([]domain.OrderLine, float64) {
	lines := make([]domain.OrderLine, 0, len(requested))
	total := decimal.Zero

	for _, req := range requested {
		product, err := h.products.FindByID(ctx, req.ProductID)
		if err != nil {
			logger.Debug(ctx).
				Str("product_id", req.ProductID).
				Msg("Skipping order line for unknown product")
			continue
		}

		if product.Stock <= 0 && h.policy == RejectOutOfStock {
			logger.Info(ctx).
				Str("product_id", product.ID).
				Msg("Skipping order line for out of stock product")
			continue
		}

		qty := clampQuantity(req.Quantity, product.Stock)
		price := product.EffectivePrice()

		lines = append(lines, domain.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name.Get(catalog.DefaultLocale),
			Quantity:    qty,
			Price:       price,
		})
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))))
	}

	return lines, total.Round(2).InexactFloat64()
}

// clampQuantity bounds a requested quantity by stock but never below one
func clampQuantity(requested, stock int) int {
	return max(1, min(requested, stock))
}
