package migrations

import (
	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/pkg/migration"
	"gorm.io/gorm"
)

type CreateOrdersTables struct{}

func init() {
	migration.Register("20260301000005_create_orders_tables", &CreateOrdersTables{})
}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.OrderItem{}, &models.Order{})
}
