package seeders

import (
	"errors"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/storage"
	"gorm.io/gorm"
)

func init() {
	Register("demo_user", SeedDemoUser)
	Register("demo_products", SeedDemoProducts)
}

const demoEmail = "demo@ecofinds.local"

// SeedDemoUser creates the account that owns the demo listings.
func SeedDemoUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", demoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Email:    demoEmail,
		Username: "demo",
		Password: hash,
	}).Error
}

// SeedDemoProducts inserts a handful of listings for browsing. Only
// runs against an empty products table.
func SeedDemoProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var owner models.User
	if err := db.Where("email = ?", demoEmail).First(&owner).Error; err != nil {
		return err
	}

	demo := []models.Product{
		{Title: "Leather Jacket", Description: "Gently used leather jacket.", Category: "Clothes", Price: 120.0},
		{Title: "Old Textbooks", Description: "Bundle of CS and Math books.", Category: "Books", Price: 30.0},
		{Title: "Wireless Earbuds", Description: "Working perfectly, lightly used.", Category: "Electronics", Price: 50.0},
		{Title: "Wooden Chair", Description: "Solid wood, minor scratches.", Category: "Furniture", Price: 80.0},
		{Title: "Yoga Mat", Description: "Like new.", Category: "Sports Equipment", Price: 20.0},
	}

	for i := range demo {
		demo[i].UserID = owner.ID
		demo[i].Image = storage.Placeholder
	}

	return db.Create(&demo).Error
}
