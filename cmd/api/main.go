package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/config"
	"github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/pkg/memstore"
	"github.com/pranavkdileep/inventory-dashboard/pkg/telemetry"
	analyticsApi "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/api"
	inventoryApi "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/api"
	"github.com/pranavkdileep/inventory-dashboard/services/inventory/application/consumers"
	ordersApi "github.com/pranavkdileep/inventory-dashboard/services/orders/application/api"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	store := memstore.New()
	log.Info("in-memory store initialized")

	sessionStore := auth.NewSessionStore(
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", "cookie")

	appConfig := &app.Application{
		Store:        store,
		Logger:       log,
		EventBus:     eventBus,
		SessionStore: sessionStore,
		Config:       cfg,
	}

	if err := consumers.RegisterLowStockAlerts(ctx, appConfig); err != nil {
		log.Error("failed to register event subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		EventBus: eventBus,
		Store:    store,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", auth.LoginHandler(sessionStore, log))
		r.Post("/auth/logout", auth.LogoutHandler(sessionStore))
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireTenant(sessionStore, log))
			registerRoutes(r, appConfig)
		})
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	inventoryApi.InventoryRoutes(r, a)
	ordersApi.OrderRoutes(r, a)
	analyticsApi.AnalyticsRoutes(r, a)
}
