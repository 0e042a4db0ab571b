package repositories

import (
	"github.com/ecofinds/ecofinds/app/models"
	"gorm.io/gorm"
)

// CategoryRepository reads the seeded category vocabulary.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Names returns every category name in alphabetical order.
func (r *CategoryRepository) Names() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Category{}).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

// Exists reports whether name is part of the vocabulary.
func (r *CategoryRepository) Exists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
