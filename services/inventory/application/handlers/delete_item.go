package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item. Past orders keep their recorded lines; the id is
// never reassigned.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be an integer"})
		return
	}

	if err := h.svc.Inventory.Delete(r.Context(), tenantID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
