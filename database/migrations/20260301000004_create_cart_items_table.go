package migrations

import (
	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/pkg/migration"
	"gorm.io/gorm"
)

type CreateCartItemsTable struct{}

func init() {
	migration.Register("20260301000004_create_cart_items_table", &CreateCartItemsTable{})
}

func (m *CreateCartItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CartItem{})
}

func (m *CreateCartItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.CartItem{})
}
