package migrations

import (
	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/pkg/migration"
	"gorm.io/gorm"
)

type CreateCategoriesTable struct{}

func init() {
	migration.Register("20260301000002_create_categories_table", &CreateCategoriesTable{})
}

func (m *CreateCategoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *CreateCategoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Category{})
}
