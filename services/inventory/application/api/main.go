package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
	"github.com/pranavkdileep/inventory-dashboard/services/inventory/application/handlers"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Post("/adjust", handlers.NewAdjustItemHandler(svcs).Execute)
			r.Get("/low-stock", handlers.NewLowStockHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
		r.Get("/categories", handlers.NewCategoriesHandler(svcs).Execute)
		r.Route("/settings", func(r chi.Router) {
			settings := handlers.NewSettingsHandler(svcs)
			r.Get("/", settings.Get)
			r.Put("/", settings.Put)
		})
	})
}
