package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecofinds/ecofinds/app/models"
	"github.com/ecofinds/ecofinds/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer serves the full middleware stack and route table against
// an in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	for _, name := range []string{"Clothes", "Books", "Electronics"} {
		require.NoError(t, db.Create(&models.Category{Name: name}).Error)
	}

	srv := httptest.NewServer(server.BuildRouter(db).Handler())
	t.Cleanup(srv.Close)
	return srv
}

type apiResponse struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Errors  map[string]interface{} `json:"errors"`
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	code, _ := call(t, srv, http.MethodPost, "/api/register", "", map[string]string{
		"email": email, "password": "secret password", "username": "tester",
	})
	require.Equal(t, http.StatusCreated, code)

	code, resp := call(t, srv, http.MethodPost, "/api/login", "", map[string]string{
		"email": email, "password": "secret password",
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRegisterLoginProfile(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "jane@example.com")

	code, resp := call(t, srv, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "jane@example.com", user.Email)

	// The password hash never leaves the API.
	assert.NotContains(t, string(resp.Data), "password")
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	srv := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/products"},
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/checkout"},
		{http.MethodGet, "/api/orders"},
	} {
		code, _ := call(t, srv, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, "%s %s", route.method, route.path)
	}
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	seller := registerAndLogin(t, srv, "seller@example.com")
	stranger := registerAndLogin(t, srv, "stranger@example.com")

	code, resp := call(t, srv, http.MethodPost, "/api/products", seller, map[string]interface{}{
		"title": "Leather Jacket", "category": "Clothes", "price": 120.0,
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.NotZero(t, created.ID)

	// Public browse and detail need no token.
	code, _ = call(t, srv, http.MethodGet, "/api/products?category=Clothes", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, srv, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusOK, code)

	// A stranger's update is answered like a missing listing.
	code, _ = call(t, srv, http.MethodPut, fmt.Sprintf("/api/products/%d", created.ID), stranger, map[string]interface{}{
		"title": "Hijacked", "category": "Clothes", "price": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, srv, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), seller, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, srv, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestProductValidationOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	seller := registerAndLogin(t, srv, "seller@example.com")

	code, resp := call(t, srv, http.MethodPost, "/api/products", seller, map[string]interface{}{
		"title": "", "category": "Nonsense", "price": -3.0,
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, resp.Errors, "title")
	assert.Contains(t, resp.Errors, "category")
	assert.Contains(t, resp.Errors, "price")
}

func TestCartAndCheckoutOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	seller := registerAndLogin(t, srv, "seller@example.com")
	buyer := registerAndLogin(t, srv, "buyer@example.com")

	code, resp := call(t, srv, http.MethodPost, "/api/products", seller, map[string]interface{}{
		"title": "Old Textbooks", "category": "Books", "price": 30.0,
	})
	require.Equal(t, http.StatusCreated, code)
	var product models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &product))

	// Checkout with nothing in the cart.
	code, resp = call(t, srv, http.MethodPost, "/api/checkout", buyer, nil)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Cart is empty.", resp.Message)

	code, _ = call(t, srv, http.MethodPost, "/api/cart", buyer, map[string]interface{}{
		"product_id": product.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp = call(t, srv, http.MethodGet, "/api/cart", buyer, nil)
	require.Equal(t, http.StatusOK, code)
	var cartView struct {
		Items []models.CartLine `json:"items"`
		Total float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &cartView))
	require.Len(t, cartView.Items, 1)
	assert.Equal(t, 60.0, cartView.Total)

	code, resp = call(t, srv, http.MethodPost, "/api/checkout", buyer, nil)
	require.Equal(t, http.StatusCreated, code)
	var order models.Order
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	require.Len(t, order.Items, 1)

	code, resp = call(t, srv, http.MethodGet, "/api/orders", buyer, nil)
	require.Equal(t, http.StatusOK, code)
	var summaries []models.OrderSummary
	require.NoError(t, json.Unmarshal(resp.Data, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, 60.0, summaries[0].Total)

	code, resp = call(t, srv, http.MethodGet, fmt.Sprintf("/api/orders/%d/items", order.ID), buyer, nil)
	require.Equal(t, http.StatusOK, code)
	var items []models.OrderItem
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Old Textbooks", items[0].Title)
}

func TestCategoriesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	code, resp := call(t, srv, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, code)

	var names []string
	require.NoError(t, json.Unmarshal(resp.Data, &names))
	assert.Equal(t, []string{"Books", "Clothes", "Electronics"}, names)
}
