package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/pkg/memstore"
	invdomain "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain"
)

func newTestService(t *testing.T) *InventoryService {
	t.Helper()
	log := logger.NewNop()
	bus := events.NewEventBus(log)
	t.Cleanup(func() { _ = bus.Close() })
	return NewInventoryService(memstore.New(), bus, log, 10)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInventoryService_UpsertCreatesThenMerges(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	tenant := uuid.New()

	item, created, err := svc.Upsert(ctx, tenant, UpsertItemParams{
		Name: "Coffee Beans", Category: "Beverages", Quantity: 10, UnitPrice: price("12.00"),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !created {
		t.Fatal("expected first upsert to create")
	}
	if item.ID != 1 || item.Quantity != 10 {
		t.Fatalf("unexpected item %+v", item)
	}

	// Same name in a different casing merges quantity and overwrites the rest.
	merged, created, err := svc.Upsert(ctx, tenant, UpsertItemParams{
		Name: "COFFEE BEANS", Category: "Pantry", Quantity: 5, UnitPrice: price("13.50"),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Fatal("expected merge, not create")
	}
	if merged.ID != item.ID {
		t.Fatalf("merge changed id: %d != %d", merged.ID, item.ID)
	}
	if merged.Quantity != 15 {
		t.Fatalf("expected quantity 15, got %d", merged.Quantity)
	}
	if merged.Category != "Pantry" {
		t.Fatalf("expected category overwrite, got %q", merged.Category)
	}
	if !merged.UnitPrice.Equal(price("13.50")) {
		t.Fatalf("expected price overwrite, got %s", merged.UnitPrice)
	}
	if merged.Name != "Coffee Beans" {
		t.Fatalf("expected original casing kept, got %q", merged.Name)
	}

	items, err := svc.List(ctx, tenant)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestInventoryService_UpsertRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	tenant := uuid.New()

	tests := []struct {
		name    string
		params  UpsertItemParams
		wantErr error
	}{
		{"empty name", UpsertItemParams{Name: "   ", Category: "Misc", Quantity: 1, UnitPrice: price("1")}, invdomain.ErrInvalidItemName},
		{"empty category", UpsertItemParams{Name: "Thing", Category: "", Quantity: 1, UnitPrice: price("1")}, invdomain.ErrInvalidCategory},
		{"negative quantity", UpsertItemParams{Name: "Thing", Category: "Misc", Quantity: -1, UnitPrice: price("1")}, invdomain.ErrInvalidQuantity},
		{"negative price", UpsertItemParams{Name: "Thing", Category: "Misc", Quantity: 1, UnitPrice: price("-1")}, invdomain.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Upsert(ctx, tenant, tt.params); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestInventoryService_EditRenameCollision(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	tenant := uuid.New()

	a, _, err := svc.Upsert(ctx, tenant, UpsertItemParams{Name: "Alpha", Category: "Misc", Quantity: 1, UnitPrice: price("1")})
	if err != nil {
		t.Fatalf("seed alpha: %v", err)
	}
	if _, _, err := svc.Upsert(ctx, tenant, UpsertItemParams{Name: "Beta", Category: "Misc", Quantity: 1, UnitPrice: price("1")}); err != nil {
		t.Fatalf("seed beta: %v", err)
	}

	_, err = svc.Edit(ctx, tenant, a.ID, EditItemParams{Name: "beta", Category: "Misc", Quantity: 1, UnitPrice: price("1")})
	if !errors.Is(err, invdomain.ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}

	// Renaming onto itself (casing change only) is allowed.
	edited, err := svc.Edit(ctx, tenant, a.ID, EditItemParams{Name: "ALPHA", Category: "Tools", Quantity: 7, UnitPrice: price("2")})
	if err != nil {
		t.Fatalf("self rename: %v", err)
	}
	if edited.Name != "ALPHA" || edited.Quantity != 7 || edited.Category != "Tools" {
		t.Fatalf("unexpected edit result %+v", edited)
	}
}

func TestInventoryService_AdjustQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	tenant := uuid.New()

	if _, _, err := svc.Upsert(ctx, tenant, UpsertItemParams{Name: "Sugar", Category: "Pantry", Quantity: 10, UnitPrice: price("2")}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	item, err := svc.AdjustQuantity(ctx, tenant, "sugar", -4)
	if err != nil {
		t.Fatalf("adjust down: %v", err)
	}
	if item.Quantity != 6 {
		t.Fatalf("expected 6, got %d", item.Quantity)
	}

	_, err = svc.AdjustQuantity(ctx, tenant, "Sugar", -7)
	if !errors.Is(err, invdomain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	var stockErr *invdomain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %T", err)
	}
	if stockErr.Available != 6 || stockErr.Requested != 7 {
		t.Fatalf("unexpected detail %+v", stockErr)
	}

	// The failed adjustment must not have moved the quantity.
	after, err := svc.AdjustQuantity(ctx, tenant, "Sugar", 0)
	if err != nil {
		t.Fatalf("noop adjust: %v", err)
	}
	if after.Quantity != 6 {
		t.Fatalf("failed adjustment changed quantity: %d", after.Quantity)
	}

	_, err = svc.AdjustQuantity(ctx, tenant, "Missing", 1)
	if !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryService_DeleteAndLowStock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	tenant := uuid.New()

	low, _, err := svc.Upsert(ctx, tenant, UpsertItemParams{Name: "Scarce", Category: "Misc", Quantity: 3, UnitPrice: price("1")})
	if err != nil {
		t.Fatalf("seed scarce: %v", err)
	}
	if _, _, err := svc.Upsert(ctx, tenant, UpsertItemParams{Name: "Plenty", Category: "Misc", Quantity: 50, UnitPrice: price("1")}); err != nil {
		t.Fatalf("seed plenty: %v", err)
	}

	lowStock, err := svc.LowStock(ctx, tenant)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(lowStock) != 1 || lowStock[0].Name != "Scarce" {
		t.Fatalf("unexpected low stock %+v", lowStock)
	}

	if err := svc.Delete(ctx, tenant, low.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, tenant, low.ID); !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, tenant, low.ID); !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on double delete, got %v", err)
	}

	// Deleted ids are never reassigned.
	next, _, err := svc.Upsert(ctx, tenant, UpsertItemParams{Name: "Fresh", Category: "Misc", Quantity: 1, UnitPrice: price("1")})
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if next.ID <= 2 {
		t.Fatalf("expected a fresh id greater than 2, got %d", next.ID)
	}
}

func TestInventoryService_ListEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	items, err := svc.List(ctx, uuid.New())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestInventoryService_Categories(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	tenant := uuid.New()

	for _, p := range []UpsertItemParams{
		{Name: "Tea", Category: "Beverages", Quantity: 1, UnitPrice: price("1")},
		{Name: "Socks", Category: "Apparel", Quantity: 1, UnitPrice: price("1")},
		{Name: "Juice", Category: "beverages", Quantity: 1, UnitPrice: price("1")},
	} {
		if _, _, err := svc.Upsert(ctx, tenant, p); err != nil {
			t.Fatalf("seed %q: %v", p.Name, err)
		}
	}

	categories, err := svc.Categories(ctx, tenant)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{"Apparel", "Beverages"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, categories)
		}
	}
}
