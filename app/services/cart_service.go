package services

import (
	"errors"
	"fmt"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/app/repositories"
	"github.com/ecofinds/ecofinds/pkg/metrics"
	"gorm.io/gorm"
)

// CartService owns per-user, per-product quantity lines.
type CartService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// Add puts qty of product into user's cart. If a line already exists its
// quantity is incremented rather than a second row created. The product
// must exist.
func (s *CartService) Add(user, product uint, qty int) error {
	if qty < 1 {
		qty = 1
	}

	if _, err := s.products.FindByID(product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("cart: lookup product: %w", err)
	}

	existing, err := s.carts.Find(user, product)
	switch {
	case err == nil:
		if err := s.carts.SetQuantity(user, product, existing.Quantity+qty); err != nil {
			return fmt.Errorf("cart: increment: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.CartItem{UserID: user, ProductID: product, Quantity: qty}
		if err := s.carts.Create(&item); err != nil {
			return fmt.Errorf("cart: add: %w", err)
		}
	default:
		return fmt.Errorf("cart: find line: %w", err)
	}

	metrics.CartOperations.WithLabelValues("add").Inc()
	return nil
}

// SetQuantity overwrites the quantity of the (user, product) line.
// A quantity of zero or below removes the line instead of storing it.
func (s *CartService) SetQuantity(user, product uint, qty int) error {
	if qty <= 0 {
		return s.Remove(user, product)
	}

	if err := s.carts.SetQuantity(user, product, qty); err != nil {
		return fmt.Errorf("cart: set quantity: %w", err)
	}
	metrics.CartOperations.WithLabelValues("update").Inc()
	return nil
}

// Remove deletes the (user, product) line. Removing an absent line is a
// no-op.
func (s *CartService) Remove(user, product uint) error {
	if err := s.carts.Delete(user, product); err != nil {
		return fmt.Errorf("cart: remove: %w", err)
	}
	metrics.CartOperations.WithLabelValues("remove").Inc()
	return nil
}

// Clear empties user's cart. Clearing an empty cart is a no-op.
func (s *CartService) Clear(user uint) error {
	if err := s.carts.Clear(user); err != nil {
		return fmt.Errorf("cart: clear: %w", err)
	}
	metrics.CartOperations.WithLabelValues("clear").Inc()
	return nil
}

// View returns the cart joined against live product data. Lines whose
// product has been deleted are skipped.
func (s *CartService) View(user uint) ([]models.CartLine, error) {
	lines, err := s.carts.Lines(user)
	if err != nil {
		return nil, fmt.Errorf("cart: view: %w", err)
	}
	return lines, nil
}

// Total returns the sum of price × quantity over the current lines,
// zero for an empty cart.
func (s *CartService) Total(user uint) (float64, error) {
	lines, err := s.View(user)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total, nil
}
