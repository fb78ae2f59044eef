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

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists the tenant's inventory ordered by id.
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	items, err := h.svc.Inventory.List(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponses(items))
}

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches a single item by id.
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.svc.Inventory.GetByID(r.Context(), tenantID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}
