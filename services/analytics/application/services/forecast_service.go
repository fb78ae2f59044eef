package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/models"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/repositories"
	domainsvc "github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/services"
)

// ForecastService trains a fresh trend model per request. Training over a
// tenant's full order history is cheap at this scale and avoids holding
// stale models across writes.
type ForecastService struct {
	source      repositories.SnapshotSource
	log         logger.Logger
	horizonDays int
}

func NewForecastService(source repositories.SnapshotSource, log logger.Logger, horizonDays int) *ForecastService {
	return &ForecastService{
		source:      source,
		log:         log,
		horizonDays: horizonDays,
	}
}

// Forecast projects daily revenue for daysAhead days starting tomorrow.
// A daysAhead of zero or less falls back to the configured horizon.
// Returns ErrInsufficientData when the tenant has sales on fewer than five
// distinct days.
func (s *ForecastService) Forecast(ctx context.Context, tenantID uuid.UUID, daysAhead int) (*models.Forecast, error) {
	if daysAhead <= 0 {
		daysAhead = s.horizonDays
	}

	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	var engine domainsvc.Engine
	if err := engine.Train(snap.Orders); err != nil {
		return nil, err
	}

	forecast, err := engine.Predict(daysAhead)
	if err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "forecast generated",
		"tenant_id", tenantID.String(),
		"days_ahead", daysAhead,
		"confidence", forecast.Confidence,
	)
	return forecast, nil
}
