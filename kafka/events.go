package kafka

import (
	"time"

	"github.com/tair/growshop/internal/order/domain"
)

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)

// OrderPlacedEvent announces a newly placed order
type OrderPlacedEvent struct {
	EventID   string             `json:"event_id"`
	EventType string             `json:"event_type"`
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	Lines     []domain.OrderLine `json:"lines"`
	ItemCount int                `json:"item_count"`
	Total     float64            `json:"total"`
	Currency  string             `json:"currency"`
	City      string             `json:"city"`
	Country   string             `json:"country"`
	Timestamp time.Time          `json:"timestamp"`
}

// NewOrderPlacedEvent builds the event payload for order. Only the
// destination city and country leave the service; contact data stays.
func NewOrderPlacedEvent(order *domain.Order) OrderPlacedEvent {
	items := 0
	for _, l := range order.Lines {
		items += l.Quantity
	}

	return OrderPlacedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Lines:     order.Lines,
		ItemCount: items,
		Total:     order.Total,
		Currency:  "EUR",
		City:      order.ShippingAddress.City,
		Country:   order.ShippingAddress.Country,
	}
}
