package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/orders/application/services"
)

// GetOrdersHandler handles GET /orders requests.
type GetOrdersHandler struct {
	svc *appsvcs.Services
}

func NewGetOrdersHandler(svc *appsvcs.Services) *GetOrdersHandler {
	return &GetOrdersHandler{svc: svc}
}

// Execute lists the tenant's orders, newest first.
func (h *GetOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	orders, err := h.svc.Orders.List(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newOrderResponses(orders))
}

// GetOrderHandler handles GET /orders/{id} requests.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute fetches a single order by id.
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.svc.Orders.GetByID(r.Context(), tenantID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newOrderResponse(order))
}
