package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is an immutable purchase record created at checkout.
// It is never updated or deleted after creation.
type Order struct {
	gorm.Model
	UserID uint        `gorm:"not null;index" json:"user_id"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots one cart line at the moment of purchase. Title and
// Price are copies, deliberately decoupled from the product row: editing
// or deleting the product later must not change what was charged.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"` // traceability only
	Title     string  `gorm:"size:255" json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// OrderSummary is one row of a user's purchase history.
type OrderSummary struct {
	OrderID   uint      `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	Total     float64   `json:"total"`
}
