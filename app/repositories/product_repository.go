package repositories

import (
	"strings"

	"github.com/ecofinds/ecofinds/app/models"
	"gorm.io/gorm"
)

// BrowseFilter narrows a catalog listing query. Zero-value fields are
// ignored; set fields are ANDed together.
type BrowseFilter struct {
	Category string
	Keyword  string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

// Create persists a new product record.
func (r *ProductRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var p models.Product
	err := r.db.First(&p, id).Error
	return p, err
}

// UpdateOwned applies fields to the product only when owner matches the
// stored owner. Returns the number of rows touched; 0 covers both an
// unknown id and an ownership mismatch.
func (r *ProductRepository) UpdateOwned(id, owner uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND user_id = ?", id, owner).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes the product when owner matches. Reports whether a
// row was actually removed.
func (r *ProductRepository) DeleteOwned(id, owner uint) (bool, error) {
	res := r.db.Unscoped().
		Where("id = ? AND user_id = ?", id, owner).
		Delete(&models.Product{})
	return res.RowsAffected > 0, res.Error
}

// Browse returns products matching the filter, newest-first.
// Keyword matches are a case-insensitive substring search on title only.
func (r *ProductRepository) Browse(f BrowseFilter) ([]models.Product, error) {
	q := r.db.Model(&models.Product{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Keyword != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Keyword)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	var products []models.Product
	err := q.Order("id DESC").Limit(limit).Offset(f.Offset).Find(&products).Error
	return products, err
}

// ByOwner returns all listings belonging to owner, newest-first.
func (r *ProductRepository) ByOwner(owner uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// CountByOwner returns how many listings owner has.
func (r *ProductRepository) CountByOwner(owner uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("user_id = ?", owner).
		Count(&count).Error
	return count, err
}
