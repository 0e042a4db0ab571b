package models

import "gorm.io/gorm"

// CartItem is one line in a user's cart. At most one line exists per
// (user, product) pair; adding the same product again increments Quantity.
type CartItem struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`
}

// CartLine is a cart item joined against the live product row, as shown
// to the user while shopping.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is price × quantity for this line.
func (l CartLine) Subtotal() float64 { return l.Price * float64(l.Quantity) }
