// Package routes wires controllers onto the router.
package routes

import (
	"github.com/ecofinds/ecofinds/app/controllers"
	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/middleware"
	"github.com/ecofinds/ecofinds/pkg/router"
	"gorm.io/gorm"
)

// Register mounts the full API surface on r.
func Register(r *router.Router, db *gorm.DB) {
	authSvc := services.NewAuthService(db)
	catalogSvc := services.NewCatalogService(db)
	cartSvc := services.NewCartService(db)
	checkoutSvc := services.NewCheckoutService(db)
	historySvc := services.NewHistoryService(db)
	statsSvc := services.NewStatsService(db)

	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc, historySvc, statsSvc)
	uploadCtrl := controllers.NewUploadController()

	api := r.Group("/api")

	// Public.
	api.Post("/register", "auth.register", authCtrl.Register)
	api.Post("/login", "auth.login", authCtrl.Login)
	api.Get("/products", "products.index", productCtrl.Index)
	api.Get("/categories", "categories.index", productCtrl.Categories)

	// Authenticated. chi matches the literal "/products/mine" ahead of
	// the "/products/{id}" wildcard.
	protected := api.Group("", middleware.Auth)

	protected.Get("/profile", "auth.profile", authCtrl.Profile)
	protected.Put("/profile", "auth.profile.update", authCtrl.UpdateProfile)
	protected.Put("/password", "auth.password.update", authCtrl.UpdatePassword)

	protected.Get("/products/mine", "products.mine", productCtrl.Mine)
	protected.Post("/products", "products.store", productCtrl.Store)
	protected.Put("/products/{id}", "products.update", productCtrl.Update)
	protected.Delete("/products/{id}", "products.destroy", productCtrl.Destroy)

	api.Get("/products/{id}", "products.show", productCtrl.Show)

	protected.Get("/cart", "cart.index", cartCtrl.Index)
	protected.Post("/cart", "cart.add", cartCtrl.Add)
	protected.Put("/cart/{product_id}", "cart.update", cartCtrl.Update)
	protected.Delete("/cart/{product_id}", "cart.remove", cartCtrl.Remove)
	protected.Delete("/cart", "cart.clear", cartCtrl.Clear)

	protected.Post("/checkout", "checkout", orderCtrl.Checkout)
	protected.Get("/orders", "orders.index", orderCtrl.Index)
	protected.Get("/orders/{id}/items", "orders.items", orderCtrl.Items)
	protected.Get("/dashboard", "dashboard", orderCtrl.Dashboard)

	protected.Post("/uploads", "uploads.store", uploadCtrl.Store)
}
