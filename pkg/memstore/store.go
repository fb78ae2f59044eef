// Package memstore is the in-memory storage engine behind every bounded
// context. Each tenant owns an isolated go-memdb database (items, orders,
// history, categories) plus monotonic id counters and display settings.
//
// go-memdb gives the two properties the dashboard's consistency rules depend
// on: write transactions are serialized per tenant (single writer), and an
// aborted transaction leaves no trace — a compound operation such as placing
// a multi-line order either commits every stock decrement or none of them.
//
// Objects handed out by a transaction are shared with the radix tree and must
// be treated as immutable; mutate through Clone() and re-insert.
//
// Nothing here touches disk. A process restart discards all tenant state;
// that boundary is intentional.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	histmodels "github.com/pranavkdileep/inventory-dashboard/services/history/domain/models"
	invdomain "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain"
	invmodels "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
	orddomain "github.com/pranavkdileep/inventory-dashboard/services/orders/domain"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// DefaultCompanyName is the display name a fresh tenant starts with.
const DefaultCompanyName = "Inventory Dashboard"

// Tenant holds one tenant's complete data set.
type Tenant struct {
	ID uuid.UUID

	db *memdb.MemDB

	nextItemID  atomic.Int64
	nextOrderID atomic.Int64
	nextHistSeq atomic.Int64

	settingsMu  sync.RWMutex
	companyName string
}

// Store is the process-wide tenant registry. Tenants are provisioned lazily
// on first access and live for the lifetime of the process.
type Store struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]*Tenant
}

// New returns an empty Store.
func New() *Store {
	return &Store{tenants: make(map[uuid.UUID]*Tenant)}
}

// Tenant returns the state for tenantID, provisioning it on first access.
func (s *Store) Tenant(tenantID uuid.UUID) *Tenant {
	s.mu.RLock()
	t, ok := s.tenants[tenantID]
	s.mu.RUnlock()
	if ok {
		return t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tenants[tenantID]; ok {
		return t
	}

	db, err := memdb.NewMemDB(schema())
	if err != nil {
		// The schema is static; failing to build it is a programming error.
		panic("memstore: invalid schema: " + err.Error())
	}
	t = &Tenant{ID: tenantID, db: db, companyName: DefaultCompanyName}
	s.tenants[tenantID] = t
	return t
}

// TenantCount reports how many tenants currently hold state.
func (s *Store) TenantCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tenants)
}

// CompanyName returns the tenant's display name.
func (s *Store) CompanyName(tenantID uuid.UUID) string {
	t := s.Tenant(tenantID)
	t.settingsMu.RLock()
	defer t.settingsMu.RUnlock()
	return t.companyName
}

// SetCompanyName updates the tenant's display name.
func (s *Store) SetCompanyName(tenantID uuid.UUID, name string) {
	t := s.Tenant(tenantID)
	t.settingsMu.Lock()
	defer t.settingsMu.Unlock()
	t.companyName = name
}

// View runs fn inside a read-only transaction over a point-in-time snapshot
// of the tenant's data.
func (s *Store) View(ctx context.Context, tenantID uuid.UUID, fn func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := s.Tenant(tenantID)
	txn := t.db.Txn(false)
	defer txn.Abort()
	return fn(&Tx{txn: txn, tenant: t})
}

// Update runs fn inside a write transaction. If fn returns an error the
// transaction is aborted and every change inside it is discarded; otherwise
// it commits atomically. Writers for the same tenant are serialized.
func (s *Store) Update(ctx context.Context, tenantID uuid.UUID, fn func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := s.Tenant(tenantID)
	txn := t.db.Txn(true)
	tx := &Tx{txn: txn, tenant: t}
	if err := fn(tx); err != nil {
		txn.Abort()
		return err
	}
	txn.Commit()
	return nil
}

// Tx is a typed view over one tenant's transaction.
type Tx struct {
	txn    *memdb.Txn
	tenant *Tenant
}

// --- items ---

// ItemByID looks up an item by its stable id.
func (tx *Tx) ItemByID(id int64) (*invmodels.Item, error) {
	raw, err := tx.txn.First(tableItems, "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, invdomain.ErrItemNotFound
	}
	return raw.(*invmodels.Item), nil
}

// ItemByName looks up an item by name, case-insensitively.
func (tx *Tx) ItemByName(name string) (*invmodels.Item, error) {
	raw, err := tx.txn.First(tableItems, "name", name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, invdomain.ErrItemNotFound
	}
	return raw.(*invmodels.Item), nil
}

// Items returns all items ordered by ascending id.
func (tx *Tx) Items() ([]*invmodels.Item, error) {
	it, err := tx.txn.Get(tableItems, "id")
	if err != nil {
		return nil, err
	}
	var items []*invmodels.Item
	for raw := it.Next(); raw != nil; raw = it.Next() {
		items = append(items, raw.(*invmodels.Item))
	}
	return items, nil
}

// SaveItem inserts or replaces the item keyed by its id.
func (tx *Tx) SaveItem(item *invmodels.Item) error {
	return tx.txn.Insert(tableItems, item)
}

// DeleteItem removes the item. Hard removal, no tombstone.
func (tx *Tx) DeleteItem(item *invmodels.Item) error {
	return tx.txn.Delete(tableItems, item)
}

// NextItemID assigns the next item id. Ids are strictly increasing and never
// reused, even when the transaction that requested one aborts (gaps are fine).
func (tx *Tx) NextItemID() int64 {
	return tx.tenant.nextItemID.Add(1)
}

// --- categories ---

// EnsureCategory records the category if it has not been seen before.
// The original casing of the first reference wins.
func (tx *Tx) EnsureCategory(name string) error {
	raw, err := tx.txn.First(tableCategories, "id", name)
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}
	return tx.txn.Insert(tableCategories, &categoryRow{Name: name})
}

// Categories returns all known category names sorted case-insensitively.
func (tx *Tx) Categories() ([]string, error) {
	it, err := tx.txn.Get(tableCategories, "id")
	if err != nil {
		return nil, err
	}
	var names []string
	for raw := it.Next(); raw != nil; raw = it.Next() {
		names = append(names, raw.(*categoryRow).Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names, nil
}

// --- orders ---

// OrderByID looks up an order by id.
func (tx *Tx) OrderByID(id int64) (*ordmodels.Order, error) {
	raw, err := tx.txn.First(tableOrders, "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, orddomain.ErrOrderNotFound
	}
	return raw.(*ordmodels.Order), nil
}

// Orders returns all orders ordered by ascending id.
func (tx *Tx) Orders() ([]*ordmodels.Order, error) {
	it, err := tx.txn.Get(tableOrders, "id")
	if err != nil {
		return nil, err
	}
	var orders []*ordmodels.Order
	for raw := it.Next(); raw != nil; raw = it.Next() {
		orders = append(orders, raw.(*ordmodels.Order))
	}
	return orders, nil
}

// SaveOrder inserts or replaces the order keyed by its id.
func (tx *Tx) SaveOrder(order *ordmodels.Order) error {
	return tx.txn.Insert(tableOrders, order)
}

// DeleteOrder removes the order.
func (tx *Tx) DeleteOrder(order *ordmodels.Order) error {
	return tx.txn.Delete(tableOrders, order)
}

// NextOrderID assigns the next order id. Same monotonic, never-reused policy
// as item ids.
func (tx *Tx) NextOrderID() int64 {
	return tx.tenant.nextOrderID.Add(1)
}

// --- history ---

// AppendHistory assigns the next sequence number to e and stores it.
// History is append-only; there is no update or delete path.
func (tx *Tx) AppendHistory(e *histmodels.Entry) error {
	e.Seq = tx.tenant.nextHistSeq.Add(1)
	return tx.txn.Insert(tableHistory, e)
}

// History returns all entries in insertion order.
func (tx *Tx) History() ([]*histmodels.Entry, error) {
	it, err := tx.txn.Get(tableHistory, "id")
	if err != nil {
		return nil, err
	}
	var entries []*histmodels.Entry
	for raw := it.Next(); raw != nil; raw = it.Next() {
		entries = append(entries, raw.(*histmodels.Entry))
	}
	return entries, nil
}
