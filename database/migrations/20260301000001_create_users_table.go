package migrations

import (
	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/pkg/migration"
	"gorm.io/gorm"
)

type CreateUsersTable struct{}

func init() {
	migration.Register("20260301000001_create_users_table", &CreateUsersTable{})
}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.User{})
}
