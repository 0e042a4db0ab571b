package services_test

import (
	"testing"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and
// the category vocabulary seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	for _, name := range []string{
		"Clothes", "Books", "Electronics", "Furniture", "Accessories",
		"Sports Equipment", "Home Decor", "Beauty & Personal Care",
		"Toys & Games", "Kitchenware",
	} {
		require.NoError(t, db.Create(&models.Category{Name: name}).Error)
	}

	return db
}

// newTestUser inserts a user and returns its id.
func newTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	user := models.User{Email: email, Password: "x", Username: "tester"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}
