package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/growshop/internal/user/domain"
	"github.com/tair/growshop/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle verifies the credentials and returns the matching user. Unknown
// email and wrong password both yield ErrInvalidCredentials.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*domain.User, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := h.repo.FindByEmail(ctx, domain.NormalizeEmail(cmd.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
