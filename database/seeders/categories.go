package seeders

import (
	"github.com/ecofinds/ecofinds/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	Register("categories", SeedCategories)
}

// defaultCategories is the fixed vocabulary listings are classified by.
var defaultCategories = []string{
	"Clothes", "Books", "Electronics", "Furniture", "Accessories",
	"Sports Equipment", "Home Decor", "Beauty & Personal Care",
	"Toys & Games", "Kitchenware",
}

// SeedCategories inserts the category vocabulary. Reruns are no-ops
// thanks to the unique index on name.
func SeedCategories(db *gorm.DB) error {
	for _, name := range defaultCategories {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Category{Name: name}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
