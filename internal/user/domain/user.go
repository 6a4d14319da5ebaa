package domain

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("email, name and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6

// User represents a registered customer
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	PasswordHash string    `json:"passwordHash" gorm:"not null"`
	AgeVerified  bool      `json:"ageVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// PublicUser is the user as exposed over HTTP, without the password hash
type PublicUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AgeVerified bool      `json:"ageVerified"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public returns the view of u that is safe to send to clients
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		AgeVerified: u.AgeVerified,
		CreatedAt:   u.CreatedAt,
	}
}

// NormalizeEmail is the canonical stored form of an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NextUserID numbers users by registration order: u1, u2, ...
func NextUserID(count int) string {
	return "u" + strconv.Itoa(count+1)
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	// Create assigns the next user id and stores the user. It fails with
	// ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
