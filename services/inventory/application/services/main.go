package services

import (
	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Inventory *InventoryService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Inventory: NewInventoryService(a.Store, a.EventBus, a.Logger, a.Config.LowStockThreshold),
	}
}
