package services_test

import (
	"testing"

	"github.com/ecofinds/ecofinds/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)

	p, err := catalog.Create(owner, services.ProductInput{
		Title: "Wooden Chair", Category: "Furniture", Price: 80,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, p.ID, 2))
	require.NoError(t, cart.Add(buyer, p.ID, 3))

	lines, err := cart.View(buyer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	buyer := newTestUser(t, db, "buyer@example.com")
	cart := services.NewCartService(db)

	err := cart.Add(buyer, 9999, 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartAddClampsQuantity(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)

	p, err := catalog.Create(owner, services.ProductInput{
		Title: "Yoga Mat", Category: "Sports Equipment", Price: 20,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, p.ID, -4))

	lines, err := cart.View(buyer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)

	p, err := catalog.Create(owner, services.ProductInput{
		Title: "Old Textbooks", Category: "Books", Price: 30,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, p.ID, 2))
	require.NoError(t, cart.SetQuantity(buyer, p.ID, 0))

	lines, err := cart.View(buyer)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartRemoveAndClearIdempotent(t *testing.T) {
	db := newTestDB(t)
	buyer := newTestUser(t, db, "buyer@example.com")
	cart := services.NewCartService(db)

	// Nothing in the cart: both are no-ops, not errors.
	require.NoError(t, cart.Remove(buyer, 123))
	require.NoError(t, cart.Clear(buyer))
}

func TestCartViewSkipsDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)

	keep, err := catalog.Create(owner, services.ProductInput{
		Title: "Keeper", Category: "Books", Price: 10,
	})
	require.NoError(t, err)
	gone, err := catalog.Create(owner, services.ProductInput{
		Title: "Goner", Category: "Books", Price: 15,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, keep.ID, 1))
	require.NoError(t, cart.Add(buyer, gone.ID, 1))

	removed, err := catalog.Delete(gone.ID, owner)
	require.NoError(t, err)
	require.True(t, removed)

	lines, err := cart.View(buyer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Keeper", lines[0].Title)
}

func TestCartTotal(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)

	a, err := catalog.Create(owner, services.ProductInput{
		Title: "A", Category: "Books", Price: 10,
	})
	require.NoError(t, err)
	b, err := catalog.Create(owner, services.ProductInput{
		Title: "B", Category: "Books", Price: 5,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, a.ID, 2))
	require.NoError(t, cart.Add(buyer, b.ID, 3))

	total, err := cart.Total(buyer)
	require.NoError(t, err)
	assert.Equal(t, 35.0, total)

	// An empty cart totals zero.
	total, err = cart.Total(owner)
	require.NoError(t, err)
	assert.Zero(t, total)
}
