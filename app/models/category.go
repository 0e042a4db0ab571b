package models

import "gorm.io/gorm"

// Category is one entry in the closed category vocabulary.
// The set is seeded once and products may only declare a seeded name.
type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}
