package services

import (
	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Aggregation *AggregationService
	Forecast    *ForecastService
}

// New wires all analytics application services with infrastructure from the
// Application container. The in-memory store doubles as the snapshot source.
func New(a *app.Application) *Services {
	return &Services{
		Aggregation: NewAggregationService(a.Store, a.Logger,
			a.Config.LowStockThreshold, a.Config.SalesWindowMonths, a.Config.SalesWindowDays),
		Forecast: NewForecastService(a.Store, a.Logger, a.Config.ForecastHorizonDays),
	}
}
