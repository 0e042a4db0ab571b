package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ecofinds/ecofinds/app/repositories"
	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/response"
)

// ProductController serves the public catalog and owner-side listing
// management.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(s *services.CatalogService) *ProductController {
	return &ProductController{catalog: s}
}

// Index handles GET /api/products. Filters are read from the query
// string: category, q, min_price, max_price, limit, offset.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	filter := browseFilter(r)

	products, err := c.catalog.Browse(filter)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	product, err := c.catalog.Get(id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var in services.ProductInput
	if !decode(w, r, &in) {
		return
	}

	product, err := c.catalog.Create(userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

// Update handles PUT /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	var in services.ProductInput
	if !decode(w, r, &in) {
		return
	}

	product, err := c.catalog.Update(id, userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Destroy handles DELETE /api/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	removed, err := c.catalog.Delete(id, userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !removed {
		response.NotFound(w)
		return
	}
	response.Message(w, "Product deleted.")
}

// Mine handles GET /api/products/mine.
func (c *ProductController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	products, err := c.catalog.Mine(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Categories handles GET /api/categories.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	names, err := c.catalog.Categories()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, names)
}

func browseFilter(r *http.Request) repositories.BrowseFilter {
	q := r.URL.Query()

	filter := repositories.BrowseFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Keyword:  strings.TrimSpace(q.Get("q")),
	}

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		filter.Offset = v
	}

	return filter
}
