package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	analyticsrepo "github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/repositories"
)

// Snapshot implements the analytics SnapshotSource interface. All three
// collections come from a single read transaction, so the snapshot is
// internally consistent even while writers are active.
func (s *Store) Snapshot(ctx context.Context, tenantID uuid.UUID) (*analyticsrepo.Snapshot, error) {
	snap := &analyticsrepo.Snapshot{TakenAt: time.Now()}
	err := s.View(ctx, tenantID, func(tx *Tx) error {
		var err error
		if snap.Items, err = tx.Items(); err != nil {
			return err
		}
		if snap.Orders, err = tx.Orders(); err != nil {
			return err
		}
		snap.History, err = tx.History()
		return err
	})
	if err != nil {
		return nil, err
	}
	snap.CompanyName = s.CompanyName(tenantID)
	return snap, nil
}
