package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one (product, quantity, price-at-time) entry within an order.
// ItemID is the stable reference used for stock restoration; Name is the
// display snapshot taken at order time. UnitPrice is frozen at order time —
// later price edits to the inventory never change a placed order.
type LineItem struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is quantity × unit price at order time.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order is the aggregate of the orders context. IDs are unique within a
// tenant, strictly increasing, and never reused even after deletions.
// Invariant: Total always equals the sum of line subtotals.
type Order struct {
	ID        int64           `json:"id"`
	Customer  string          `json:"customer"`
	Lines     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewOrder constructs an Order with Total derived from lines.
func NewOrder(id int64, customer string, lines []LineItem) *Order {
	return &Order{
		ID:        id,
		Customer:  customer,
		Lines:     lines,
		Total:     SumLines(lines),
		CreatedAt: time.Now(),
	}
}

// SumLines computes the total over a set of line items.
func SumLines(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Clone returns a deep copy. The store hands out shared pointers under a read
// lock, so every mutation must go through a fresh copy.
func (o *Order) Clone() *Order {
	c := *o
	c.Lines = make([]LineItem, len(o.Lines))
	copy(c.Lines, o.Lines)
	return &c
}
