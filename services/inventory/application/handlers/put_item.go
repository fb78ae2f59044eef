package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// EditItemRequest is the request body for PUT /items/{id}. All fields are
// overwritten; renaming onto another item's name is rejected.
type EditItemRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Category   string  `json:"category" validate:"required,min=1,max=255"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	ExpiryDate string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute overwrites an item's fields.
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[EditItemRequest](w, r)
	if !ok {
		return
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "expiry_date must be YYYY-MM-DD"})
		return
	}

	item, err := h.svc.Inventory.Edit(r.Context(), tenantID, id, appsvcs.EditItemParams{
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		UnitPrice:  decimal.NewFromFloat(req.UnitPrice),
		ExpiryDate: expiry,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}
