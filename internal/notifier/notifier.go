package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tair/growshop/kafka"
	"github.com/tair/growshop/pkg/logger"
)

// Notification is one message about an order
type Notification struct {
	ID        uuid.UUID
	EventID   string
	OrderID   string
	UserID    string
	Subject   string
	Body      string
	CreatedAt time.Time
}

// Sender delivers notifications
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// LogSender writes notifications to the log
type LogSender struct{}

// Send logs n
func (LogSender) Send(ctx context.Context, n Notification) error {
	logger.Info(ctx).
		Str("notification_id", n.ID.String()).
		Str("order_id", n.OrderID).
		Str("user_id", n.UserID).
		Str("subject", n.Subject).
		Msg(n.Body)
	return nil
}

// Service turns order events into notifications
type Service struct {
	sender Sender
	now    func() time.Time

	notifications *prometheus.CounterVec
	revenue       prometheus.Counter
}

// NewService creates a notifier sending through sender
func NewService(sender Sender, reg prometheus.Registerer) *Service {
	notifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "growshop",
			Subsystem: "notifier",
			Name:      "notifications_total",
			Help:      "Order notifications by result",
		},
		[]string{"result"},
	)
	revenue := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "growshop",
			Subsystem: "notifier",
			Name:      "order_revenue_euros_total",
			Help:      "Sum of the totals of notified orders",
		},
	)
	reg.MustRegister(notifications, revenue)

	return &Service{
		sender:        sender,
		now:           time.Now,
		notifications: notifications,
		revenue:       revenue,
	}
}

// HandleOrderPlaced notifies about one placed order. It has the signature
// of kafka.EventHandler.
func (s *Service) HandleOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	n := Notification{
		ID:        uuid.New(),
		EventID:   event.EventID,
		OrderID:   event.OrderID,
		UserID:    event.UserID,
		Subject:   fmt.Sprintf("Order %s confirmed", event.OrderID),
		Body:      Summary(event),
		CreatedAt: s.now(),
	}

	if err := s.sender.Send(ctx, n); err != nil {
		s.notifications.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to notify order %s: %w", event.OrderID, err)
	}

	s.notifications.WithLabelValues("sent").Inc()
	s.revenue.Add(event.Total)
	return nil
}

// Summary renders the order lines and total of event
func Summary(event kafka.OrderPlacedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d item(s) shipping to %s, %s:", event.ItemCount, event.City, event.Country)
	for _, l := range event.Lines {
		price := decimal.NewFromFloat(l.Price).StringFixed(2)
		fmt.Fprintf(&b, " %dx %s (%s)", l.Quantity, l.ProductName, price)
	}
	fmt.Fprintf(&b, ". Total %s %s", decimal.NewFromFloat(event.Total).StringFixed(2), event.Currency)
	return b.String()
}
