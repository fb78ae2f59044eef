package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgevents "github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/pkg/memstore"
	histmodels "github.com/pranavkdileep/inventory-dashboard/services/history/domain/models"
	invdomain "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain"
	invevents "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/events"
	"github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
)

// InventoryService owns every tenant's stock collection: create-or-merge,
// edits, quantity adjustments, deletion, and the low-stock view. Each
// operation runs inside a single per-tenant transaction together with its
// history entry, so inventory and audit log can never drift apart.
type InventoryService struct {
	store             *memstore.Store
	bus               *pkgevents.EventBus
	log               logger.Logger
	lowStockThreshold int
}

// NewInventoryService wires the service. lowStockThreshold is the quantity
// below which an item counts as low stock (canonical policy: 10).
func NewInventoryService(store *memstore.Store, bus *pkgevents.EventBus, log logger.Logger, lowStockThreshold int) *InventoryService {
	return &InventoryService{
		store:             store,
		bus:               bus,
		log:               log.With("component", "inventory_service"),
		lowStockThreshold: lowStockThreshold,
	}
}

// UpsertItemParams carries the validated fields for Upsert.
type UpsertItemParams struct {
	Name       string
	Category   string
	Quantity   int
	UnitPrice  decimal.Decimal
	ExpiryDate *time.Time
}

// Upsert adds stock. If an item with the same name exists (case-insensitive),
// its quantity is incremented and category, price, and expiry are overwritten;
// otherwise a new item is created with a fresh id. Returns the resulting item
// and whether it was newly created.
func (s *InventoryService) Upsert(ctx context.Context, tenantID uuid.UUID, p UpsertItemParams) (*models.Item, bool, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}
	category, err := models.NewCategory(p.Category)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", invdomain.ErrInvalidCategory, err)
	}
	if p.Quantity < 0 {
		return nil, false, fmt.Errorf("%w: quantity must be non-negative", invdomain.ErrInvalidQuantity)
	}
	if p.UnitPrice.IsNegative() {
		return nil, false, fmt.Errorf("%w: unit price must be non-negative", invdomain.ErrInvalidPrice)
	}

	var (
		result  *models.Item
		created bool
	)
	err = s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		existing, err := tx.ItemByName(name.String())
		switch {
		case err == nil:
			merged := existing.Clone()
			merged.Quantity += p.Quantity
			merged.Category = category.String()
			merged.UnitPrice = p.UnitPrice
			merged.ExpiryDate = p.ExpiryDate
			if err := tx.SaveItem(merged); err != nil {
				return err
			}
			result = merged
		case errors.Is(err, invdomain.ErrItemNotFound):
			item := models.NewItem(tx.NextItemID(), name, category, p.Quantity, p.UnitPrice, p.ExpiryDate)
			if err := tx.SaveItem(item); err != nil {
				return err
			}
			result = item
			created = true
		default:
			return err
		}

		if err := tx.EnsureCategory(category.String()); err != nil {
			return err
		}
		action := histmodels.ActionItemUpdated
		if created {
			action = histmodels.ActionItemAdded
		}
		return tx.AppendHistory(histmodels.NewEntry(action, result.Name, nil))
	})
	if err != nil {
		return nil, false, err
	}

	topic := invevents.TopicItemUpdated
	if created {
		topic = invevents.TopicItemCreated
	}
	s.publish(ctx, topic, tenantID, result)
	s.log.InfoContext(ctx, "item upserted", "tenant_id", tenantID, "item_id", result.ID, "created", created)
	return result, created, nil
}

// EditItemParams carries the full replacement fields for Edit.
type EditItemParams struct {
	Name       string
	Category   string
	Quantity   int
	UnitPrice  decimal.Decimal
	ExpiryDate *time.Time
}

// Edit overwrites an existing item's fields by id. Renaming is allowed and
// does not break restoration of historical orders, which reference items by
// id. A rename that collides with another item's name is rejected.
func (s *InventoryService) Edit(ctx context.Context, tenantID uuid.UUID, id int64, p EditItemParams) (*models.Item, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}
	category, err := models.NewCategory(p.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidCategory, err)
	}
	if p.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", invdomain.ErrInvalidQuantity)
	}
	if p.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must be non-negative", invdomain.ErrInvalidPrice)
	}

	var result *models.Item
	err = s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		item, err := tx.ItemByID(id)
		if err != nil {
			return err
		}

		if other, err := tx.ItemByName(name.String()); err == nil && other.ID != item.ID {
			return fmt.Errorf("%w: %q", invdomain.ErrItemAlreadyExists, name.String())
		} else if err != nil && !errors.Is(err, invdomain.ErrItemNotFound) {
			return err
		}

		edited := item.Clone()
		edited.Name = name.String()
		edited.Category = category.String()
		edited.Quantity = p.Quantity
		edited.UnitPrice = p.UnitPrice
		edited.ExpiryDate = p.ExpiryDate
		if err := tx.SaveItem(edited); err != nil {
			return err
		}
		result = edited

		if err := tx.EnsureCategory(category.String()); err != nil {
			return err
		}
		return tx.AppendHistory(histmodels.NewEntry(histmodels.ActionItemUpdated, edited.Name, nil))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, invevents.TopicItemUpdated, tenantID, result)
	return result, nil
}

// AdjustQuantity applies delta to the named item's quantity. Positive deltas
// restock, negative deltas consume. Fails with InsufficientStock when the
// result would be negative, leaving the item untouched.
func (s *InventoryService) AdjustQuantity(ctx context.Context, tenantID uuid.UUID, itemName string, delta int) (*models.Item, error) {
	var result *models.Item
	err := s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		item, err := tx.ItemByName(itemName)
		if err != nil {
			return err
		}
		if item.Quantity+delta < 0 {
			return &invdomain.InsufficientStockError{
				Item:      item.Name,
				Available: item.Quantity,
				Requested: -delta,
			}
		}
		adjusted := item.Clone()
		adjusted.Quantity += delta
		if err := tx.SaveItem(adjusted); err != nil {
			return err
		}
		result = adjusted
		return tx.AppendHistory(histmodels.NewEntry(histmodels.ActionItemUpdated, adjusted.Name, nil))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, invevents.TopicItemUpdated, tenantID, result)
	return result, nil
}

// GetByID returns a single item.
func (s *InventoryService) GetByID(ctx context.Context, tenantID uuid.UUID, id int64) (*models.Item, error) {
	var item *models.Item
	err := s.store.View(ctx, tenantID, func(tx *memstore.Tx) error {
		var err error
		item, err = tx.ItemByID(id)
		return err
	})
	return item, err
}

// List returns all items ordered by id.
func (s *InventoryService) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Item, error) {
	var items []*models.Item
	err := s.store.View(ctx, tenantID, func(tx *memstore.Tx) error {
		var err error
		items, err = tx.Items()
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// Delete hard-removes an item by id. Past orders keep their line item
// snapshots; only restoration of those lines is skipped once the item is gone.
func (s *InventoryService) Delete(ctx context.Context, tenantID uuid.UUID, id int64) error {
	var deleted *models.Item
	err := s.store.Update(ctx, tenantID, func(tx *memstore.Tx) error {
		item, err := tx.ItemByID(id)
		if err != nil {
			return err
		}
		if err := tx.DeleteItem(item); err != nil {
			return err
		}
		deleted = item
		return tx.AppendHistory(histmodels.NewEntry(histmodels.ActionItemDeleted, item.Name, nil))
	})
	if err != nil {
		return err
	}

	s.publish(ctx, invevents.TopicItemDeleted, tenantID, deleted)
	s.log.InfoContext(ctx, "item deleted", "tenant_id", tenantID, "item_id", id)
	return nil
}

// LowStock returns items whose quantity is below the configured threshold.
func (s *InventoryService) LowStock(ctx context.Context, tenantID uuid.UUID) ([]*models.Item, error) {
	items, err := s.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	low := []*models.Item{}
	for _, item := range items {
		if item.Quantity < s.lowStockThreshold {
			low = append(low, item)
		}
	}
	return low, nil
}

// Categories returns every category this tenant has ever referenced.
func (s *InventoryService) Categories(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	var names []string
	err := s.store.View(ctx, tenantID, func(tx *memstore.Tx) error {
		var err error
		names, err = tx.Categories()
		return err
	})
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// CompanyName returns the tenant's display name.
func (s *InventoryService) CompanyName(ctx context.Context, tenantID uuid.UUID) string {
	return s.store.CompanyName(tenantID)
}

// SetCompanyName updates the tenant's display name. Length constraints are
// enforced at the request boundary.
func (s *InventoryService) SetCompanyName(ctx context.Context, tenantID uuid.UUID, name string) {
	s.store.SetCompanyName(tenantID, name)
}

// publish emits an item event; delivery is best effort.
func (s *InventoryService) publish(ctx context.Context, topic string, tenantID uuid.UUID, item *models.Item) {
	if s.bus == nil {
		return
	}
	ev := invevents.NewItemEvent(tenantID, item.ID, item.Name, item.Quantity)
	if err := s.bus.Publish(ctx, topic, ev); err != nil {
		s.log.WarnContext(ctx, "failed to publish item event", "topic", topic, "error", err)
	}
}
