package kafka

import (
	"context"

	"github.com/tair/growshop/internal/order/domain"
	"github.com/tair/growshop/pkg/breaker"
)

// GuardedPublisher stops calling an unhealthy broker for a while so that
// checkouts do not wait on producer timeouts. Events rejected by the open
// circuit are lost, like any other publish failure.
type GuardedPublisher struct {
	next    domain.EventPublisher
	breaker *breaker.Breaker
}

// NewGuardedPublisher wraps next with a circuit breaker
func NewGuardedPublisher(next domain.EventPublisher, settings breaker.Settings) *GuardedPublisher {
	return &GuardedPublisher{
		next:    next,
		breaker: breaker.New("kafka-publisher", settings),
	}
}

// PublishOrderPlaced publishes through the breaker
func (g *GuardedPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	return g.breaker.Call(func() error {
		return g.next.PublishOrderPlaced(ctx, order)
	})
}

// State reports the breaker state
func (g *GuardedPublisher) State() breaker.State {
	return g.breaker.State()
}
