package services

import (
	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Orders *OrderService
}

// New wires all order application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Orders: NewOrderService(a.Store, a.EventBus, a.Logger),
	}
}
