package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Watermill topics published by the orders context.
const (
	TopicOrderPlaced  = "order.placed"
	TopicOrderUpdated = "order.updated"
	TopicOrderDeleted = "order.deleted"
)

// OrderEvent is published after an order mutation commits.
type OrderEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`  // Schema version; increment on breaking changes
	TenantID   uuid.UUID       `json:"tenant_id"`
	OrderID    int64           `json:"order_id"`
	Customer   string          `json:"customer"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewOrderEvent fills the envelope fields for an order event.
func NewOrderEvent(tenantID uuid.UUID, orderID int64, customer string, total decimal.Decimal) OrderEvent {
	return OrderEvent{
		EventID:    uuid.New(),
		Version:    1,
		TenantID:   tenantID,
		OrderID:    orderID,
		Customer:   customer,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}
}
