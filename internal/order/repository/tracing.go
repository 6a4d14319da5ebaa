package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/growshop/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// OrderRepositoryWithTracing wraps any OrderRepository with tracing
type OrderRepositoryWithTracing struct {
	next    domain.OrderRepository
	backend string
}

// NewOrderRepositoryWithTracing creates a new repository with tracing
func NewOrderRepositoryWithTracing(next domain.OrderRepository, backend string) *OrderRepositoryWithTracing {
	return &OrderRepositoryWithTracing{next: next, backend: backend}
}

// Create with tracing
func (r *OrderRepositoryWithTracing) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.CreateOrder",
		trace.WithAttributes(
			attribute.String("db.backend", r.backend),
			attribute.String("order.user_id", order.UserID),
			attribute.Int("order.lines", len(order.Lines)),
			attribute.Float64("order.total", order.Total),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("order.id", order.ID))
	return nil
}

// FindByID with tracing
func (r *OrderRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindOrderByID",
		trace.WithAttributes(
			attribute.String("db.backend", r.backend),
			attribute.String("order.id", id),
		),
	)
	defer span.End()

	order, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return order, nil
}

// FindByUserID with tracing
func (r *OrderRepositoryWithTracing) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindOrdersByUserID",
		trace.WithAttributes(
			attribute.String("db.backend", r.backend),
			attribute.String("order.user_id", userID),
		),
	)
	defer span.End()

	orders, err := r.next.FindByUserID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}
