package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is the core aggregate of the inventory context. Items are scoped to a
// tenant; the ID is unique and monotonically assigned within that tenant.
// Quantity never goes below zero — mutations that would break this are
// rejected before they are applied.
type Item struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewItem constructs an Item with the given assigned ID and current timestamp.
// Name and category are assumed validated (see ItemName, Category).
func NewItem(id int64, name ItemName, category Category, quantity int, unitPrice decimal.Decimal, expiry *time.Time) *Item {
	return &Item{
		ID:         id,
		Name:       name.String(),
		Category:   category.String(),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		ExpiryDate: expiry,
		CreatedAt:  time.Now(),
	}
}

// Clone returns a deep copy. The store hands out shared pointers under a read
// lock, so every mutation must go through a fresh copy.
func (i *Item) Clone() *Item {
	c := *i
	if i.ExpiryDate != nil {
		d := *i.ExpiryDate
		c.ExpiryDate = &d
	}
	return &c
}

// Value is the stock value of this line: quantity × unit price.
func (i *Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
