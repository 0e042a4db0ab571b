package services_test

import (
	"testing"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	buyer := newTestUser(t, db, "buyer@example.com")
	checkout := services.NewCheckoutService(db)

	_, err := checkout.Checkout(buyer)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "a failed checkout must not leave an order behind")
}

func TestCheckoutSnapshotsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)

	a, err := catalog.Create(owner, services.ProductInput{
		Title: "Leather Jacket", Category: "Clothes", Price: 120,
	})
	require.NoError(t, err)
	b, err := catalog.Create(owner, services.ProductInput{
		Title: "Yoga Mat", Category: "Sports Equipment", Price: 20,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, a.ID, 1))
	require.NoError(t, cart.Add(buyer, b.ID, 2))

	order, err := checkout.Checkout(buyer)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, buyer, order.UserID)
	require.Len(t, order.Items, 2)

	lines, err := cart.View(buyer)
	require.NoError(t, err)
	assert.Empty(t, lines, "checkout must empty the cart")

	// A second checkout finds nothing to buy.
	_, err = checkout.Checkout(buyer)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestOrderSnapshotsSurviveProductChanges(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)
	history := services.NewHistoryService(db)

	p, err := catalog.Create(owner, services.ProductInput{
		Title: "Wireless Earbuds", Category: "Electronics", Price: 50,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, p.ID, 1))
	order, err := checkout.Checkout(buyer)
	require.NoError(t, err)

	// Reprice, retitle, then delete the live product entirely.
	_, err = catalog.Update(p.ID, owner, services.ProductInput{
		Title: "Renamed", Category: "Electronics", Price: 999,
	})
	require.NoError(t, err)
	removed, err := catalog.Delete(p.ID, owner)
	require.NoError(t, err)
	require.True(t, removed)

	items, err := history.Items(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Wireless Earbuds", items[0].Title)
	assert.Equal(t, 50.0, items[0].Price)
}

func TestHistoryOrdersNewestFirstWithTotals(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)
	history := services.NewHistoryService(db)

	a, err := catalog.Create(owner, services.ProductInput{
		Title: "A", Category: "Books", Price: 10,
	})
	require.NoError(t, err)
	b, err := catalog.Create(owner, services.ProductInput{
		Title: "B", Category: "Books", Price: 5,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, a.ID, 2))
	first, err := checkout.Checkout(buyer)
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, b.ID, 3))
	second, err := checkout.Checkout(buyer)
	require.NoError(t, err)

	summaries, err := history.Orders(buyer)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, second.ID, summaries[0].OrderID)
	assert.Equal(t, 15.0, summaries[0].Total)
	assert.Equal(t, first.ID, summaries[1].OrderID)
	assert.Equal(t, 20.0, summaries[1].Total)

	// Another user's history stays empty.
	summaries, err = history.Orders(owner)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "seller@example.com")
	buyer := newTestUser(t, db, "buyer@example.com")
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)
	stats := services.NewStatsService(db)

	a, err := catalog.Create(owner, services.ProductInput{
		Title: "A", Category: "Books", Price: 10,
	})
	require.NoError(t, err)
	_, err = catalog.Create(owner, services.ProductInput{
		Title: "B", Category: "Books", Price: 5,
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(buyer, a.ID, 2))
	_, err = checkout.Checkout(buyer)
	require.NoError(t, err)
	require.NoError(t, cart.Add(buyer, a.ID, 3))

	dash, err := stats.Dashboard(buyer)
	require.NoError(t, err)
	assert.EqualValues(t, 0, dash.Listings)
	assert.EqualValues(t, 3, dash.CartItems)
	assert.EqualValues(t, 1, dash.Orders)

	dash, err = stats.Dashboard(owner)
	require.NoError(t, err)
	assert.EqualValues(t, 2, dash.Listings)
	assert.EqualValues(t, 0, dash.CartItems)
	assert.EqualValues(t, 0, dash.Orders)
}
