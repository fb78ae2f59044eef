package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	pkgevents "github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/pkg/memstore"
	histmodels "github.com/pranavkdileep/inventory-dashboard/services/history/domain/models"
	invdomain "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain"
	orddomain "github.com/pranavkdileep/inventory-dashboard/services/orders/domain"
	ordevents "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/events"
	"github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// OrderService is the order ledger. It owns the stock reservation protocol:
// placing an order decrements inventory, editing restores then re-reserves,
// deleting restores. Every compound operation runs in one per-tenant write
// transaction — either the whole order commits, with its stock decrements and
// history entry, or nothing does.
type OrderService struct {
	store *memstore.Store
	bus   *pkgevents.EventBus
	log   logger.Logger
}

// NewOrderService wires the service.
func NewOrderService(store *memstore.Store, bus *pkgevents.EventBus, log logger.Logger) *OrderService {
	return &OrderService{
		store: store,
		bus:   bus,
		log:   log.With("component", "order_service"),
	}
}

// LineRequest is one requested (item, quantity) pair. Items are addressed by
// name at the request boundary; the resulting line item records the stable id.
type LineRequest struct {
	ItemName string
	Quantity int
}

// Place validates every requested line against current stock, then atomically
// decrements inventory, snapshots unit prices, assigns the next order id, and
// appends an order-placed history entry. If any line fails — unknown item or
// insufficient stock — no inventory is touched.
func (s *OrderService) Place(ctx context.Context, tenantID uuid.UUID, customer string, reqs []LineRequest) (*models.Order, error) {
	if strings.TrimSpace(customer) == "" {
		return nil, fmt.Errorf("%w: customer is required", orddomain.ErrInvalidCustomer)
	}
	if len(reqs) == 0 {
		return nil, orddomain.ErrNoLineItems
	}

	var order *models.Order
	err := s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		lines, err := reserveLines(tx, reqs)
		if err != nil {
			return err
		}

		order = models.NewOrder(tx.NextOrderID(), strings.TrimSpace(customer), lines)
		if err := tx.SaveOrder(order); err != nil {
			return err
		}
		return tx.AppendHistory(histmodels.NewEntry(histmodels.ActionOrderPlaced, order.Customer, &order.ID))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, ordevents.TopicOrderPlaced, tenantID, order)
	s.log.InfoContext(ctx, "order placed",
		"tenant_id", tenantID, "order_id", order.ID, "lines", len(order.Lines), "total", order.Total)
	return order, nil
}

// Edit replaces an order's customer and line items. Inside one transaction it
// restores the original lines' quantities to inventory, then re-runs the
// placement logic with the new requests against the restored state. Any
// failure aborts the transaction, rolling inventory and the order back to the
// exact pre-edit snapshot. The order keeps its id; its timestamp is refreshed.
func (s *OrderService) Edit(ctx context.Context, tenantID uuid.UUID, orderID int64, customer string, reqs []LineRequest) (*models.Order, error) {
	if strings.TrimSpace(customer) == "" {
		return nil, fmt.Errorf("%w: customer is required", orddomain.ErrInvalidCustomer)
	}
	if len(reqs) == 0 {
		return nil, orddomain.ErrNoLineItems
	}

	var updated *models.Order
	err := s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		order, err := tx.OrderByID(orderID)
		if err != nil {
			return err
		}

		if err := restoreLines(tx, order.Lines); err != nil {
			return err
		}

		lines, err := reserveLines(tx, reqs)
		if err != nil {
			return err
		}

		updated = models.NewOrder(order.ID, strings.TrimSpace(customer), lines)
		if err := tx.SaveOrder(updated); err != nil {
			return err
		}
		return tx.AppendHistory(histmodels.NewEntry(histmodels.ActionOrderUpdated, updated.Customer, &updated.ID))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, ordevents.TopicOrderUpdated, tenantID, updated)
	s.log.InfoContext(ctx, "order updated", "tenant_id", tenantID, "order_id", updated.ID)
	return updated, nil
}

// Delete removes an order and restores each line's quantity to inventory —
// the exact inverse of Place. Reports ErrOrderNotFound for unknown or
// already-deleted ids.
func (s *OrderService) Delete(ctx context.Context, tenantID uuid.UUID, orderID int64) error {
	var deleted *models.Order
	err := s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		order, err := tx.OrderByID(orderID)
		if err != nil {
			return err
		}
		if err := restoreLines(tx, order.Lines); err != nil {
			return err
		}
		if err := tx.DeleteOrder(order); err != nil {
			return err
		}
		deleted = order
		return tx.AppendHistory(histmodels.NewEntry(histmodels.ActionOrderDeleted, order.Customer, &order.ID))
	})
	if err != nil {
		return err
	}

	s.publish(ctx, ordevents.TopicOrderDeleted, tenantID, deleted)
	s.log.InfoContext(ctx, "order deleted", "tenant_id", tenantID, "order_id", orderID)
	return nil
}

// GetByID returns a single order.
func (s *OrderService) GetByID(ctx context.Context, tenantID uuid.UUID, orderID int64) (*models.Order, error) {
	var order *models.Order
	err := s.store.View(ctx, tenantID, func(tx *memstore.Tx) error {
		var err error
		order, err = tx.OrderByID(orderID)
		return err
	})
	return order, err
}

// List returns all orders, most recent first (ties broken by descending id).
func (s *OrderService) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Order, error) {
	var orders []*models.Order
	err := s.store.View(ctx, tenantID, func(tx *memstore.Tx) error {
		var err error
		orders, err = tx.Orders()
		return err
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		return []*models.Order{}, nil
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

// History returns the tenant's audit log in insertion order.
func (s *OrderService) History(ctx context.Context, tenantID uuid.UUID) ([]*histmodels.Entry, error) {
	var entries []*histmodels.Entry
	err := s.store.View(ctx, tenantID, func(tx *memstore.Tx) error {
		var err error
		entries, err = tx.History()
		return err
	})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*histmodels.Entry{}
	}
	return entries, nil
}

// reserveLines validates every request first — unknown items and stock
// shortfalls are caught before any decrement — then applies all decrements
// and builds the priced line items. Runs inside the caller's transaction, so
// an error after partial application still aborts cleanly.
func reserveLines(tx *memstore.Tx, reqs []LineRequest) ([]models.LineItem, error) {
	for _, req := range reqs {
		if req.Quantity < 1 {
			return nil, fmt.Errorf("%w: %q", orddomain.ErrInvalidQuantity, req.ItemName)
		}
		item, err := tx.ItemByName(req.ItemName)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, req.ItemName)
		}
		if item.Quantity < req.Quantity {
			return nil, &invdomain.InsufficientStockError{
				Item:      item.Name,
				Available: item.Quantity,
				Requested: req.Quantity,
			}
		}
	}

	lines := make([]models.LineItem, 0, len(reqs))
	for _, req := range reqs {
		item, err := tx.ItemByName(req.ItemName)
		if err != nil {
			return nil, err
		}
		// Re-check against the transaction's own writes: the same item may
		// appear on several lines, and the combined quantity must still fit.
		if item.Quantity < req.Quantity {
			return nil, &invdomain.InsufficientStockError{
				Item:      item.Name,
				Available: item.Quantity,
				Requested: req.Quantity,
			}
		}
		decremented := item.Clone()
		decremented.Quantity -= req.Quantity
		if err := tx.SaveItem(decremented); err != nil {
			return nil, err
		}
		lines = append(lines, models.LineItem{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  req.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines, nil
}

// restoreLines puts each line's quantity back into inventory, matching by the
// stable item id so a renamed item still restores correctly. Lines whose item
// has been deleted since the order was placed are skipped — there is nothing
// left to restore into.
func restoreLines(tx *memstore.Tx, lines []models.LineItem) error {
	for _, li := range lines {
		item, err := tx.ItemByID(li.ItemID)
		if err != nil {
			continue // item deleted after the order was placed
		}
		restored := item.Clone()
		restored.Quantity += li.Quantity
		if err := tx.SaveItem(restored); err != nil {
			return err
		}
	}
	return nil
}

// publish emits an order event; delivery is best effort.
func (s *OrderService) publish(ctx context.Context, topic string, tenantID uuid.UUID, order *models.Order) {
	if s.bus == nil {
		return
	}
	ev := ordevents.NewOrderEvent(tenantID, order.ID, order.Customer, order.Total)
	if err := s.bus.Publish(ctx, topic, ev); err != nil {
		s.log.WarnContext(ctx, "failed to publish order event", "topic", topic, "error", err)
	}
}
