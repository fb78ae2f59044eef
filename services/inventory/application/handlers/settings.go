package handlers

import (
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// SettingsResponse is the wire shape of tenant settings.
type SettingsResponse struct {
	CompanyName string `json:"company_name"`
}

// UpdateSettingsRequest is the request body for PUT /settings.
type UpdateSettingsRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=255"`
}

// SettingsHandler handles GET and PUT /settings requests.
type SettingsHandler struct {
	svc *appsvcs.Services
}

func NewSettingsHandler(svc *appsvcs.Services) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get returns the tenant's current settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	httpx.JSON(w, http.StatusOK, SettingsResponse{
		CompanyName: h.svc.Inventory.CompanyName(r.Context(), tenantID),
	})
}

// Put updates the tenant's company name.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateSettingsRequest](w, r)
	if !ok {
		return
	}

	h.svc.Inventory.SetCompanyName(r.Context(), tenantID, req.CompanyName)
	httpx.JSON(w, http.StatusOK, SettingsResponse{CompanyName: req.CompanyName})
}
