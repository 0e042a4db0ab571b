package services

import (
	"fmt"

	"github.com/ecofinds/ecofinds/app/repositories"
	"gorm.io/gorm"
)

// DashboardStats is the per-user activity summary shown on the account
// dashboard.
type DashboardStats struct {
	Listings  int64 `json:"listings"`
	CartItems int64 `json:"cart_items"`
	Orders    int64 `json:"orders"`
}

// StatsService aggregates counts across the other domains.
type StatsService struct {
	products *repositories.ProductRepository
	carts    *repositories.CartRepository
	orders   *repositories.OrderRepository
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		products: repositories.NewProductRepository(db),
		carts:    repositories.NewCartRepository(db),
		orders:   repositories.NewOrderRepository(db),
	}
}

// Dashboard returns the user's listing, cart and order counts.
func (s *StatsService) Dashboard(user uint) (DashboardStats, error) {
	listings, err := s.products.CountByOwner(user)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("stats: listings: %w", err)
	}

	cartItems, err := s.carts.ItemCount(user)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("stats: cart items: %w", err)
	}

	orders, err := s.orders.CountByUser(user)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("stats: orders: %w", err)
	}

	return DashboardStats{
		Listings:  listings,
		CartItems: cartItems,
		Orders:    orders,
	}, nil
}
