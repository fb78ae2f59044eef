package handlers

import (
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// AdjustItemRequest is the request body for POST /items/adjust. Delta may be
// negative; an adjustment that would take stock below zero is rejected and
// nothing changes.
type AdjustItemRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Delta int    `json:"delta" validate:"required"`
}

// AdjustItemHandler handles POST /items/adjust requests.
type AdjustItemHandler struct {
	svc *appsvcs.Services
}

func NewAdjustItemHandler(svc *appsvcs.Services) *AdjustItemHandler {
	return &AdjustItemHandler{svc: svc}
}

// Execute applies a signed quantity change to an item looked up by name.
func (h *AdjustItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.AdjustQuantity(r.Context(), tenantID, req.Name, req.Delta)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}
