package handlers

import (
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/orders/application/services"
)

// PlaceOrderRequest is the request body for POST /orders.
type PlaceOrderRequest struct {
	Customer string             `json:"customer" validate:"required,min=1,max=255"`
	Items    []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute places an order. Stock for every line is checked before any line
// is applied, so a failing line leaves the inventory untouched.
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PlaceOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Orders.Place(r.Context(), tenantID, req.Customer, toLineRequests(req.Items))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newOrderResponse(order))
}
