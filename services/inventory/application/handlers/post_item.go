package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/inventory/application/services"
)

// UpsertItemRequest is the request body for POST /items. Posting a name that
// already exists (case-insensitive) adds to that item's stock instead of
// creating a duplicate.
type UpsertItemRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Category   string  `json:"category" validate:"required,min=1,max=255"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	ExpiryDate string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates an item or merges stock into an existing one.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpsertItemRequest](w, r)
	if !ok {
		return
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "expiry_date must be YYYY-MM-DD"})
		return
	}

	item, created, err := h.svc.Inventory.Upsert(r.Context(), tenantID, appsvcs.UpsertItemParams{
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

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, newItemResponse(item))
}
