package repositories

import (
	"github.com/ecofinds/ecofinds/app/models"
	"gorm.io/gorm"
)

// CartRepository handles database operations for CartItem.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository {
	return &CartRepository{db: tx}
}

// Find returns the cart line for (user, product), or gorm.ErrRecordNotFound.
func (r *CartRepository) Find(user, product uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", user, product).
		First(&item).Error
	return item, err
}

// Create inserts a new cart line.
func (r *CartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// SetQuantity overwrites the quantity of an existing line.
func (r *CartRepository) SetQuantity(user, product uint, qty int) error {
	return r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", user, product).
		Update("quantity", qty).Error
}

// Delete removes the line for (user, product). Removing an absent line is
// a no-op, not an error.
func (r *CartRepository) Delete(user, product uint) error {
	return r.db.Unscoped().
		Where("user_id = ? AND product_id = ?", user, product).
		Delete(&models.CartItem{}).Error
}

// Clear removes every line in user's cart.
func (r *CartRepository) Clear(user uint) error {
	return r.db.Unscoped().
		Where("user_id = ?", user).
		Delete(&models.CartItem{}).Error
}

// Lines returns the user's cart joined against live product data, in the
// order lines were added. An inner join means lines whose product has been
// deleted are skipped.
func (r *CartRepository) Lines(user uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Table("cart_items").
		Select("cart_items.product_id, products.title, products.price, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", user).
		Order("cart_items.id").
		Scan(&lines).Error
	return lines, err
}

// ItemCount returns the total quantity across the user's cart lines.
func (r *CartRepository) ItemCount(user uint) (int64, error) {
	var count struct{ Total int64 }
	err := r.db.Model(&models.CartItem{}).
		Select("COALESCE(SUM(quantity), 0) as total").
		Where("user_id = ?", user).
		Scan(&count).Error
	return count.Total, err
}
