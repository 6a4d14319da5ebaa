package repository

import (
	"context"
	"strings"

	"github.com/tair/growshop/internal/user/domain"
	"github.com/tair/growshop/pkg/jsonstore"
)

// UsersFile is the collection file for users
const UsersFile = "users.json"

// JSONUserRepository stores users in users.json
type JSONUserRepository struct {
	users *jsonstore.Collection[domain.User]
}

// NewJSONUserRepository creates a user repository on top of store
func NewJSONUserRepository(store *jsonstore.Store) *JSONUserRepository {
	return &JSONUserRepository{
		users: jsonstore.NewCollection[domain.User](store, UsersFile),
	}
}

// Create checks the email and assigns the id under the collection lock
func (r *JSONUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.users.AppendWith(ctx, func(current []domain.User) (domain.User, error) {
		for _, u := range current {
			if strings.EqualFold(u.Email, user.Email) {
				return domain.User{}, domain.ErrEmailTaken
			}
		}
		user.ID = domain.NextUserID(len(current))
		return *user, nil
	})
	return err
}

// FindByID retrieves a user by id
func (r *JSONUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := r.users.Find(ctx, func(u domain.User) bool { return u.ID == id })
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// FindByEmail retrieves a user by email, ignoring case
func (r *JSONUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	u, ok := r.users.Find(ctx, func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}
