package app

import (
	"github.com/gorilla/sessions"

	"github.com/pranavkdileep/inventory-dashboard/pkg/config"
	"github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/pkg/memstore"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service *Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "placing order", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Store        *memstore.Store
	Logger       logger.Logger
	EventBus     *events.EventBus
	SessionStore sessions.Store // cookie-backed; nil only in tests
	Config       *config.Config
}
