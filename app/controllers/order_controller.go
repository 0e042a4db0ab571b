package controllers

import (
	"net/http"

	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/logger"
	"github.com/ecofinds/ecofinds/pkg/response"
)

// OrderController serves checkout, purchase history, and the account
// dashboard.
type OrderController struct {
	checkout *services.CheckoutService
	history  *services.HistoryService
	stats    *services.StatsService
}

func NewOrderController(checkout *services.CheckoutService, history *services.HistoryService, stats *services.StatsService) *OrderController {
	return &OrderController{checkout: checkout, history: history, stats: stats}
}

// Checkout handles POST /api/checkout.
func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	order, err := c.checkout.Checkout(userID)
	if err != nil {
		fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order placed",
		"user_id", userID, "order_id", order.ID, "items", len(order.Items))
	response.Created(w, order)
}

// Index handles GET /api/orders.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	summaries, err := c.history.Orders(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, summaries)
}

// Items handles GET /api/orders/{id}/items.
func (c *OrderController) Items(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	items, err := c.history.Items(id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, items)
}

// Dashboard handles GET /api/dashboard.
func (c *OrderController) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	dash, err := c.stats.Dashboard(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, dash)
}
