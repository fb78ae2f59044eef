package handlers

import (
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DashboardHandler handles GET /dashboard requests.
type DashboardHandler struct {
	svc *appsvcs.Services
}

func NewDashboardHandler(svc *appsvcs.Services) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Execute returns the headline summary: counts, total sales, low stock.
func (h *DashboardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	summary, err := h.svc.Aggregation.Summary(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
