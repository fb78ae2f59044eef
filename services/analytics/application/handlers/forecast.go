package handlers

import (
	"net/http"
	"strconv"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
)

// ForecastHandler handles GET /analytics/forecast requests.
type ForecastHandler struct {
	svc *appsvcs.Services
}

func NewForecastHandler(svc *appsvcs.Services) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// Execute projects daily revenue starting tomorrow. The optional days query
// parameter overrides the configured horizon.
func (h *ForecastHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "days must be between 1 and 365"})
			return
		}
		days = n
	}

	forecast, err := h.svc.Forecast.Forecast(r.Context(), tenantID, days)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, forecast)
}
