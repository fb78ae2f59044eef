package models

import "time"

// Action enumerates the auditable operations recorded in the history log.
type Action string

const (
	ActionItemAdded    Action = "item_added"
	ActionItemUpdated  Action = "item_updated"
	ActionItemDeleted  Action = "item_deleted"
	ActionOrderPlaced  Action = "order_placed"
	ActionOrderUpdated Action = "order_updated"
	ActionOrderDeleted Action = "order_deleted"
)

// Entry is one append-only audit record. Entries are never mutated or
// deleted; Seq is assigned by the store in insertion order.
type Entry struct {
	Seq        int64     `json:"seq"`
	Action     Action    `json:"action"`
	Subject    string    `json:"subject"` // item name or customer name
	OrderID    *int64    `json:"order_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEntry constructs an entry timestamped now. Seq is filled in on append.
func NewEntry(action Action, subject string, orderID *int64) *Entry {
	return &Entry{
		Action:     action,
		Subject:    subject,
		OrderID:    orderID,
		OccurredAt: time.Now(),
	}
}
