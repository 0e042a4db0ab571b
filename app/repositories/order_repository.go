package repositories

import (
	"github.com/ecofinds/ecofinds/app/models"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order and OrderItem.
// Orders are append-only: there are deliberately no update or delete
// methods here.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// Create inserts a new order header.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItems inserts the snapshot rows for an order.
func (r *OrderRepository) CreateItems(items []models.OrderItem) error {
	return r.db.Create(&items).Error
}

// SummariesByUser returns the user's orders newest-first, each with its
// total computed from the item snapshots.
func (r *OrderRepository) SummariesByUser(user uint) ([]models.OrderSummary, error) {
	var summaries []models.OrderSummary
	err := r.db.Table("orders").
		Select("orders.id as order_id, orders.created_at, SUM(order_items.price * order_items.quantity) as total").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ?", user).
		Group("orders.id, orders.created_at").
		Order("orders.id DESC").
		Scan(&summaries).Error
	return summaries, err
}

// ItemsByOrder returns the snapshot lines of one order.
func (r *OrderRepository) ItemsByOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	return items, err
}

// CountByUser returns how many orders the user has placed.
func (r *OrderRepository) CountByUser(user uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ?", user).
		Count(&count).Error
	return count, err
}
