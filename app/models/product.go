package models

import "gorm.io/gorm"

// Product is a second-hand listing. Mutable and deletable only by its
// owner; historical order items keep their own copies of title and price,
// so edits here never rewrite purchase history.
type Product struct {
	gorm.Model
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Title       string  `gorm:"size:255;not null;index" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:100;not null;index" json:"category"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Image       string  `gorm:"size:255;default:placeholder.jpg" json:"image"`
}
