package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/orders/application/services"
	"github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// OrderLineRequest is one requested line of an order body. Items are
// referenced by name; the price is never client-supplied.
type OrderLineRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// OrderLineResponse is the wire shape of one stored order line.
type OrderLineResponse struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Customer  string              `json:"customer"`
	Items     []OrderLineResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOrderResponse(o *models.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, li := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ItemID:    li.ItemID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Subtotal:  li.Subtotal(),
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Customer:  o.Customer,
		Items:     lines,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

func newOrderResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}
	return out
}

func toLineRequests(lines []OrderLineRequest) []appsvcs.LineRequest {
	out := make([]appsvcs.LineRequest, 0, len(lines))
	for _, l := range lines {
		out = append(out, appsvcs.LineRequest{ItemName: l.Name, Quantity: l.Quantity})
	}
	return out
}
