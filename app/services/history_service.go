package services

import (
	"fmt"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/app/repositories"
	"gorm.io/gorm"
)

// HistoryService is a read-only view over persisted orders.
type HistoryService struct {
	orders *repositories.OrderRepository
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{orders: repositories.NewOrderRepository(db)}
}

// Orders returns the user's purchase history newest-first, each entry
// carrying the total computed from that order's item snapshots.
func (s *HistoryService) Orders(user uint) ([]models.OrderSummary, error) {
	summaries, err := s.orders.SummariesByUser(user)
	if err != nil {
		return nil, fmt.Errorf("history: orders: %w", err)
	}
	return summaries, nil
}

// Items returns the snapshot lines of one order for display. Lookup is by
// order id alone; see DESIGN.md for the ownership discussion.
func (s *HistoryService) Items(orderID uint) ([]models.OrderItem, error) {
	items, err := s.orders.ItemsByOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("history: items: %w", err)
	}
	return items, nil
}
