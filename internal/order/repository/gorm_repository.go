package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/growshop/internal/order/domain"
)

// GormOrderRepository implements OrderRepository on PostgreSQL using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create derives the next id and inserts the order in one transaction. The
// table lock serializes concurrent checkouts across processes.
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE orders IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return fmt.Errorf("failed to lock orders: %w", err)
		}

		var ids []string
		if err := tx.Model(&domain.Order{}).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to read order ids: %w", err)
		}

		order.ID = domain.NextOrderID(ids)
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByID retrieves an order by id
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// FindByUserID returns the orders of a user, oldest first
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// AutoMigrate runs database migrations
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{})
}
