package controllers

import (
	"net/http"

	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/response"
)

// CartController serves the authenticated user's cart.
type CartController struct {
	cart *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{cart: s}
}

type cartAddRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Index handles GET /api/cart: the joined cart view plus the total.
func (c *CartController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	lines, err := c.cart.View(userID)
	if err != nil {
		fail(w, r, err)
		return
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}

	response.Success(w, map[string]interface{}{
		"items": lines,
		"total": total,
	})
}

// Add handles POST /api/cart.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var in cartAddRequest
	if !decode(w, r, &in) {
		return
	}
	if in.ProductID == 0 {
		response.ValidationError(w, map[string]string{"product_id": "The product_id field is required."})
		return
	}

	if err := c.cart.Add(userID, in.ProductID, in.Quantity); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Added to cart.")
}

// Update handles PUT /api/cart/{product_id}.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	productID, ok := uintParam(w, r, "product_id")
	if !ok {
		return
	}

	var in cartQuantityRequest
	if !decode(w, r, &in) {
		return
	}

	if err := c.cart.SetQuantity(userID, productID, in.Quantity); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Cart updated.")
}

// Remove handles DELETE /api/cart/{product_id}.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	productID, ok := uintParam(w, r, "product_id")
	if !ok {
		return
	}

	if err := c.cart.Remove(userID, productID); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Removed from cart.")
}

// Clear handles DELETE /api/cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	if err := c.cart.Clear(userID); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Cart cleared.")
}
