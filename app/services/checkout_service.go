package services

import (
	"fmt"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/app/repositories"
	"github.com/ecofinds/ecofinds/pkg/metrics"
	"gorm.io/gorm"
)

// CheckoutService converts a cart into an immutable order. It is the only
// place in the application with multi-table write semantics.
type CheckoutService struct {
	db     *gorm.DB
	carts  *repositories.CartRepository
	orders *repositories.OrderRepository
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{
		db:     db,
		carts:  repositories.NewCartRepository(db),
		orders: repositories.NewOrderRepository(db),
	}
}

// Checkout snapshots every cart line into a new order and empties the
// cart, all inside one transaction: a crash or error between steps leaves
// either the old cart with no order, or the new order with an empty cart,
// never a mix.
//
// Two near-simultaneous checkouts by the same user may each read the same
// cart and both succeed; the transaction guarantees per-operation
// atomicity, not cross-request serialization.
func (s *CheckoutService) Checkout(user uint) (models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)
		orders := s.orders.WithTx(tx)

		lines, err := carts.Lines(user)
		if err != nil {
			return fmt.Errorf("checkout: read cart: %w", err)
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{UserID: user}
		if err := orders.Create(&order); err != nil {
			return fmt.Errorf("checkout: create order: %w", err)
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Title:     line.Title,
				Price:     line.Price,
				Quantity:  line.Quantity,
			})
		}
		if err := orders.CreateItems(items); err != nil {
			return fmt.Errorf("checkout: snapshot items: %w", err)
		}
		order.Items = items

		if err := carts.Clear(user); err != nil {
			return fmt.Errorf("checkout: clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	return order, nil
}
