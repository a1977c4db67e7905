package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prasetyoadi/warung-assistant/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Public storefront surface.
	r.Post("/login", handlers.LoginHandler)
	r.Get("/products", handlers.SearchProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)

	// AI endpoints: one in-flight call per user action, so throttle bursts.
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/command", handlers.VoiceCommandHandler)
		r.Post("/scan-ai", handlers.ScanProductHandler)
	})

	// Session cart.
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handlers.GetCartHandler)
		r.Delete("/", handlers.ClearCartHandler)
		r.Post("/items", handlers.AddCartItemHandler)
		r.Post("/items/{productId}/increment", handlers.IncrementCartItemHandler)
		r.Post("/items/{productId}/decrement", handlers.DecrementCartItemHandler)
		r.Delete("/items/{productId}", handlers.RemoveCartItemHandler)
	})

	// Dashboard surface.
	r.Route("/admin", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Post("/categories/cleanup", handlers.CleanupCategoriesHandler)
		r.Get("/settings", handlers.GetSettingsHandler)
		r.Put("/settings", handlers.SaveSettingsHandler)
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
