package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tair/growshop/internal/user/domain"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/logger"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Email    string
	Name     string
	Password string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
	now  func() time.Time
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, now: time.Now}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	email := domain.NormalizeEmail(cmd.Email)
	name := strings.TrimSpace(cmd.Name)
	if email == "" || name == "" || cmd.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if len(cmd.Password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		AgeVerified:  true,
		CreatedAt:    h.now().UTC(),
	}

	// Create rejects duplicates itself so the check and the insert are atomic.
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx).Str("user_id", user.ID).Msg("User registered")
	return user, nil
}
