package handlers_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/pkg/memstore"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/application/handlers"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
	ordevents "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/events"
)

// TestStream_OnlyDeliversOwnTenantEvents connects one tenant to the stream,
// publishes an order event for a different tenant followed by one of its own,
// and checks the foreign event never reaches the client.
func TestStream_OnlyDeliversOwnTenantEvents(t *testing.T) {
	log := logger.NewNop()
	bus := events.NewEventBus(log)
	t.Cleanup(func() { _ = bus.Close() })

	store := memstore.New()
	agg := appsvcs.NewAggregationService(store, log, 10, 6, 30)

	tenantA := uuid.New()
	tenantB := uuid.New()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithTenantID(req.Context(), tenantA)))
		})
	})
	r.Get("/api/stream", handlers.NewStreamHandler(bus, agg, log).Execute)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/stream", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect stream: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// Headers arrive only after the handler has subscribed, so both
	// publishes below are observed by the stream.
	if err := bus.Publish(ctx, ordevents.TopicOrderPlaced,
		ordevents.NewOrderEvent(tenantB, 1, "Bob Secret Customer", decimal.NewFromInt(999))); err != nil {
		t.Fatalf("publish tenant B event: %v", err)
	}
	if err := bus.Publish(ctx, ordevents.TopicOrderPlaced,
		ordevents.NewOrderEvent(tenantA, 2, "Alice", decimal.NewFromInt(50))); err != nil {
		t.Fatalf("publish tenant A event: %v", err)
	}

	// Read frames until the first order.placed data line. Events are
	// delivered in publish order per topic, so if tenant B's event were
	// forwarded it would arrive before tenant A's.
	reader := bufio.NewReader(resp.Body)
	var seen strings.Builder
	var dataLine string
	for dataLine == "" {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream (got so far: %q): %v", seen.String(), err)
		}
		seen.WriteString(line)
		if strings.HasPrefix(line, "data:") && strings.Contains(line, "order_id") {
			dataLine = line
		}
	}
	cancel()

	if strings.Contains(seen.String(), "Bob Secret Customer") || strings.Contains(seen.String(), tenantB.String()) {
		t.Fatalf("stream leaked another tenant's event: %q", seen.String())
	}
	if !strings.Contains(dataLine, "Alice") || !strings.Contains(dataLine, tenantA.String()) {
		t.Fatalf("expected the connected tenant's own event, got %q", dataLine)
	}
}
