package handlers

import (
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/orders/application/services"
)

// GetHistoryHandler handles GET /history requests.
type GetHistoryHandler struct {
	svc *appsvcs.Services
}

func NewGetHistoryHandler(svc *appsvcs.Services) *GetHistoryHandler {
	return &GetHistoryHandler{svc: svc}
}

// Execute returns the tenant's full audit trail in insertion order.
func (h *GetHistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	entries, err := h.svc.Orders.History(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}
