package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Order statuses. Only StatusPending is produced by checkout.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

// GuestUserID is stored for orders placed without a session
const GuestUserID = "guest"

var (
	ErrMissingOrderData = errors.New("shipping address and order lines are required")
	ErrNoValidLines     = errors.New("no valid order lines")
	ErrOrderNotFound    = errors.New("order not found")
)

// ValidationError reports a required field that is missing
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// ShippingAddress is where an order is delivered. All fields are required.
type ShippingAddress struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Normalize trims every field and checks none is empty, in declaration order
func (a ShippingAddress) Normalize() (ShippingAddress, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", &a.Name},
		{"address", &a.Address},
		{"city", &a.City},
		{"postalCode", &a.PostalCode},
		{"country", &a.Country},
		{"phone", &a.Phone},
	}

	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return ShippingAddress{}, &ValidationError{Field: f.name}
		}
	}
	return a, nil
}

// OrderLine is a purchased product with name and price captured at checkout
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order represents a placed order
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	UserID          string          `json:"userId" gorm:"index;not null"`
	Lines           []OrderLine     `json:"lines" gorm:"serializer:json;not null"`
	Total           float64         `json:"total" gorm:"not null"`
	Status          string          `json:"status" gorm:"not null;default:'pending'"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

var orderIDPattern = regexp.MustCompile(`^ORD-(\d+)`)

// NextOrderID returns the id following the highest numeric suffix among ids,
// zero padded to at least three digits. Ids without a numeric suffix are
// ignored, so an empty history starts at ORD-001.
func NextOrderID(ids []string) string {
	highest := 0
	for _, id := range ids {
		m := orderIDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("ORD-%03d", highest+1)
}

// OrderRepository defines the contract for order persistence
type OrderRepository interface {
	// Create assigns the next order id and persists the order atomically
	// with respect to other Create calls.
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByUserID(ctx context.Context, userID string) ([]Order, error)
}

// EventPublisher announces placed orders to other systems
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *Order) error
}
