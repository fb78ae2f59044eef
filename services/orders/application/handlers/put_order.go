package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/orders/application/services"
)

// EditOrderRequest is the request body for PUT /orders/{id}. The new line set
// replaces the old one entirely.
type EditOrderRequest struct {
	Customer string             `json:"customer" validate:"required,min=1,max=255"`
	Items    []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// PutOrderHandler handles PUT /orders/{id} requests.
type PutOrderHandler struct {
	svc *appsvcs.Services
}

func NewPutOrderHandler(svc *appsvcs.Services) *PutOrderHandler {
	return &PutOrderHandler{svc: svc}
}

// Execute rewrites an order. The old lines are restored to stock and the new
// lines reserved in one transaction; on any failure the order and inventory
// are left exactly as they were.
func (h *PutOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[EditOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Orders.Edit(r.Context(), tenantID, id, req.Customer, toLineRequests(req.Items))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newOrderResponse(order))
}

// DeleteOrderHandler handles DELETE /orders/{id} requests.
type DeleteOrderHandler struct {
	svc *appsvcs.Services
}

func NewDeleteOrderHandler(svc *appsvcs.Services) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute cancels an order and restores its quantities to inventory.
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Orders.Delete(r.Context(), tenantID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
