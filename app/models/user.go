package models

import "gorm.io/gorm"

// User is the primary user model.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Username string `gorm:"size:255" json:"username"`
}
