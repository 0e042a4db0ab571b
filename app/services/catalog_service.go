package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/app/repositories"
	"github.com/ecofinds/ecofinds/pkg/cache"
	"github.com/ecofinds/ecofinds/pkg/storage"
	"github.com/ecofinds/ecofinds/pkg/validate"
	"gorm.io/gorm"
)

const categoriesCacheKey = "catalog:categories"

// CatalogService owns product records and the category vocabulary.
type CatalogService struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		products:   repositories.NewProductRepository(db),
		categories: repositories.NewCategoryRepository(db),
	}
}

// ProductInput is the payload for creating or updating a listing.
type ProductInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"nullable,max=5000"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image" validate:"nullable,max=255"`
}

// Create validates the input and persists a new listing owned by owner.
// The image reference falls back to the placeholder sentinel.
func (s *CatalogService) Create(owner uint, in ProductInput) (models.Product, error) {
	if err := s.validateInput(in); err != nil {
		return models.Product{}, err
	}

	image := in.Image
	if image == "" {
		image = storage.Placeholder
	}

	p := models.Product{
		UserID:      owner,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Image:       image,
	}
	if err := s.products.Create(&p); err != nil {
		return models.Product{}, fmt.Errorf("catalog: create: %w", err)
	}
	return p, nil
}

// Update applies the input to an existing listing. An unknown id and an
// ownership mismatch are both reported as ErrNotFound.
func (s *CatalogService) Update(id, owner uint, in ProductInput) (models.Product, error) {
	if err := s.validateInput(in); err != nil {
		return models.Product{}, err
	}

	image := in.Image
	if image == "" {
		image = storage.Placeholder
	}

	fields := map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"category":    in.Category,
		"price":       in.Price,
		"image":       image,
	}

	rows, err := s.products.UpdateOwned(id, owner, fields)
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog: update: %w", err)
	}
	if rows == 0 {
		return models.Product{}, ErrNotFound
	}

	return s.Get(id)
}

// Delete removes a listing when owner matches. Reports whether a row was
// actually removed; historical order snapshots are untouched.
func (s *CatalogService) Delete(id, owner uint) (bool, error) {
	removed, err := s.products.DeleteOwned(id, owner)
	if err != nil {
		return false, fmt.Errorf("catalog: delete: %w", err)
	}
	return removed, nil
}

// Get returns a single listing by id.
func (s *CatalogService) Get(id uint) (models.Product, error) {
	p, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog: get: %w", err)
	}
	return p, nil
}

// Browse returns listings matching the filter, newest-first.
func (s *CatalogService) Browse(f repositories.BrowseFilter) ([]models.Product, error) {
	products, err := s.products.Browse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: browse: %w", err)
	}
	return products, nil
}

// Mine returns all of owner's listings, newest-first.
func (s *CatalogService) Mine(owner uint) ([]models.Product, error) {
	products, err := s.products.ByOwner(owner)
	if err != nil {
		return nil, fmt.Errorf("catalog: mine: %w", err)
	}
	return products, nil
}

// Categories returns the category vocabulary, cache-aside through Redis.
// The vocabulary only changes on reseed, so an hour of staleness is fine.
func (s *CatalogService) Categories() ([]string, error) {
	var names []string
	if cache.Get(categoriesCacheKey, &names) {
		return names, nil
	}

	names, err := s.categories.Names()
	if err != nil {
		return nil, fmt.Errorf("catalog: categories: %w", err)
	}

	cache.Set(categoriesCacheKey, names, time.Hour) //nolint:errcheck
	return names, nil
}

// validateInput runs tag validation plus the vocabulary check that tags
// cannot express.
func (s *CatalogService) validateInput(in ProductInput) error {
	errs := validate.Struct(in)

	if in.Category != "" {
		known, err := s.categories.Exists(in.Category)
		if err != nil {
			return fmt.Errorf("catalog: check category: %w", err)
		}
		if !known {
			errs["category"] = "The selected category is invalid."
		}
	}

	if len(errs) > 0 {
		return NewValidationError(errs)
	}
	return nil
}
