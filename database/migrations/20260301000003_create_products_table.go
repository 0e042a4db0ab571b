package migrations

import (
	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/pkg/migration"
	"gorm.io/gorm"
)

type CreateProductsTable struct{}

func init() {
	migration.Register("20260301000003_create_products_table", &CreateProductsTable{})
}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}
