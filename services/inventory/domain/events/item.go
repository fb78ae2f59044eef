package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemEvent is published after an inventory mutation commits.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItem*).
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	TenantID   uuid.UUID `json:"tenant_id"`
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemEvent fills the envelope fields for an item event.
func NewItemEvent(tenantID uuid.UUID, itemID int64, name string, quantity int) ItemEvent {
	return ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		TenantID:   tenantID,
		ItemID:     itemID,
		Name:       name,
		Quantity:   quantity,
		OccurredAt: time.Now().UTC(),
	}
}
