package handlers

import (
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// LowStockHandler handles GET /items/low-stock requests.
type LowStockHandler struct {
	svc *appsvcs.Services
}

func NewLowStockHandler(svc *appsvcs.Services) *LowStockHandler {
	return &LowStockHandler{svc: svc}
}

// Execute lists items whose quantity is below the configured threshold.
func (h *LowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	items, err := h.svc.Inventory.LowStock(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponses(items))
}

// CategoriesHandler handles GET /categories requests.
type CategoriesHandler struct {
	svc *appsvcs.Services
}

func NewCategoriesHandler(svc *appsvcs.Services) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// Execute lists the tenant's known categories, sorted case-insensitively.
func (h *CategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	categories, err := h.svc.Inventory.Categories(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string][]string{"categories": categories})
}
