package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
)

// ItemResponse is the wire shape of an inventory item.
type ItemResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ExpiryDate string          `json:"expiry_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

const dateLayout = "2006-01-02"

func newItemResponse(item *models.Item) ItemResponse {
	resp := ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		CreatedAt: item.CreatedAt,
	}
	if item.ExpiryDate != nil {
		resp.ExpiryDate = item.ExpiryDate.Format(dateLayout)
	}
	return resp
}

func newItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}
	return out
}

// parseExpiry converts an optional YYYY-MM-DD string to a time pointer.
// Validation of the format happens at the request layer.
func parseExpiry(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
