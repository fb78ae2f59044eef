package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/application/handlers"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
)

// AnalyticsRoutes registers dashboard, analytics, report, and event-stream
// endpoints on the provided chi router.
func AnalyticsRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Get("/dashboard", handlers.NewDashboardHandler(svcs).Execute)
		r.Get("/report", handlers.NewReportHandler(svcs).Execute)
		r.Get("/stream", handlers.NewStreamHandler(a.EventBus, svcs.Aggregation, a.Logger).Execute)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/categories", handlers.NewCategoryTotalsHandler(svcs).Execute)
			r.Get("/top-products", handlers.NewTopProductsHandler(svcs).Execute)
			r.Get("/insights", handlers.NewInsightsHandler(svcs).Execute)
			r.Get("/forecast", handlers.NewForecastHandler(svcs).Execute)
			r.Route("/sales", func(r chi.Router) {
				sales := handlers.NewSalesSeriesHandler(svcs)
				r.Get("/monthly", sales.Monthly)
				r.Get("/daily", sales.Daily)
				r.Get("/hourly", sales.Hourly)
				r.Get("/today", sales.Today)
			})
		})
	})
}
