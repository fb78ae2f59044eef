package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	analyticsdomain "github.com/pranavkdileep/inventory-dashboard/services/analytics/domain"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/repositories"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// salesHistory generates one order per day for days consecutive days ending
// yesterday, with revenue growing linearly.
func salesHistory(days int) []*ordmodels.Order {
	end := time.Now().AddDate(0, 0, -1)
	orders := make([]*ordmodels.Order, 0, days)
	for i := 0; i < days; i++ {
		day := end.AddDate(0, 0, -(days - 1 - i))
		orders = append(orders, fixtureOrder(int64(i+1), day, line(1, "Widget", i+1, "10.00")))
	}
	return orders
}

func TestForecastService_InsufficientHistory(t *testing.T) {
	source := &fakeSource{snap: &repositories.Snapshot{Orders: salesHistory(4)}}
	svc := NewForecastService(source, logger.NewNop(), 30)

	_, err := svc.Forecast(context.Background(), uuid.New(), 7)
	if !errors.Is(err, analyticsdomain.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestForecastService_ProjectsRequestedHorizon(t *testing.T) {
	source := &fakeSource{snap: &repositories.Snapshot{Orders: salesHistory(14)}}
	svc := NewForecastService(source, logger.NewNop(), 30)

	forecast, err := svc.Forecast(context.Background(), uuid.New(), 7)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(forecast.Points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(forecast.Points))
	}
	for _, p := range forecast.Points {
		if p.Revenue.IsNegative() {
			t.Fatalf("negative projection for %s: %s", p.Date, p.Revenue)
		}
	}
	if forecast.Points[0].Date != time.Now().AddDate(0, 0, 1).Format("2006-01-02") {
		t.Fatalf("expected projection to start tomorrow, got %s", forecast.Points[0].Date)
	}
}

func TestForecastService_DefaultsToConfiguredHorizon(t *testing.T) {
	source := &fakeSource{snap: &repositories.Snapshot{Orders: salesHistory(10)}}
	svc := NewForecastService(source, logger.NewNop(), 30)

	forecast, err := svc.Forecast(context.Background(), uuid.New(), 0)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(forecast.Points) != 30 {
		t.Fatalf("expected 30 points from the configured horizon, got %d", len(forecast.Points))
	}
}
