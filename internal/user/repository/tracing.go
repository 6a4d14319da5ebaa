package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/growshop/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// UserRepositoryWithTracing wraps any UserRepository with tracing
type UserRepositoryWithTracing struct {
	next    domain.UserRepository
	backend string
}

// NewUserRepositoryWithTracing creates a new repository with tracing
func NewUserRepositoryWithTracing(next domain.UserRepository, backend string) *UserRepositoryWithTracing {
	return &UserRepositoryWithTracing{next: next, backend: backend}
}

// Create with tracing
func (r *UserRepositoryWithTracing) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.CreateUser",
		trace.WithAttributes(attribute.String("db.backend", r.backend)),
	)
	defer span.End()

	if err := r.next.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return nil
}

// FindByID with tracing
func (r *UserRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindUserByID",
		trace.WithAttributes(
			attribute.String("db.backend", r.backend),
			attribute.String("user.id", id),
		),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindByEmail with tracing. The address itself is not recorded.
func (r *UserRepositoryWithTracing) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindUserByEmail",
		trace.WithAttributes(attribute.String("db.backend", r.backend)),
	)
	defer span.End()

	user, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}
