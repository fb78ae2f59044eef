package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (the EventBus qualifies; the in-memory store is always up).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// TenantCounter reports how many tenants currently hold in-memory state.
type TenantCounter interface {
	TenantCount() int
}

// HealthChecks holds the dependencies probed by the health endpoint.
type HealthChecks struct {
	EventBus HealthChecker
	Store    TenantCounter
}

type healthResponse struct {
	Status   string `json:"status"`
	EventBus string `json:"event_bus"`
	Tenants  int    `json:"tenants"`
	UptimeS  int64  `json:"uptime_seconds"`
}

// HealthHandler returns an http.HandlerFunc that probes the registered
// dependencies and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   "ok",
			EventBus: "ok",
			UptimeS:  int64(time.Since(started).Seconds()),
		}

		if checks.Store != nil {
			resp.Tenants = checks.Store.TenantCount()
		}
		if checks.EventBus != nil {
			if err := checks.EventBus.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.EventBus = "unreachable"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
