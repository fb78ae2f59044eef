package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	histmodels "github.com/pranavkdileep/inventory-dashboard/services/history/domain/models"
	invmodels "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// Snapshot is a point-in-time, read-only view of one tenant's data set.
// Aggregation and forecasting are pure functions over a Snapshot, which keeps
// them trivially testable with literal fixtures.
type Snapshot struct {
	CompanyName string
	Items       []*invmodels.Item
	Orders      []*ordmodels.Order
	History     []*histmodels.Entry
	TakenAt     time.Time
}

// SnapshotSource produces consistent snapshots. The domain layer owns this
// interface; the storage engine implements it.
type SnapshotSource interface {
	Snapshot(ctx context.Context, tenantID uuid.UUID) (*Snapshot, error)
}
