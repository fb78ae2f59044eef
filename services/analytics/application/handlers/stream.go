package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/events"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
	invevents "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/events"
	ordevents "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/events"
)

// streamTopics is the set of topics forwarded to SSE clients.
var streamTopics = []string{
	invevents.TopicItemCreated,
	invevents.TopicItemUpdated,
	invevents.TopicItemDeleted,
	ordevents.TopicOrderPlaced,
	ordevents.TopicOrderUpdated,
	ordevents.TopicOrderDeleted,
}

// heartbeatInterval keeps idle SSE connections alive through proxies.
const heartbeatInterval = 15 * time.Second

type streamEvent struct {
	topic   string
	payload []byte
}

// StreamHandler handles GET /stream requests, pushing domain events to the
// client as server-sent events.
type StreamHandler struct {
	bus *events.EventBus
	svc *appsvcs.AggregationService
	log logger.Logger
}

func NewStreamHandler(bus *events.EventBus, svc *appsvcs.AggregationService, log logger.Logger) *StreamHandler {
	return &StreamHandler{bus: bus, svc: svc, log: log}
}

// tenantEnvelope extracts the tenant id shared by every domain event payload.
type tenantEnvelope struct {
	TenantID uuid.UUID `json:"tenant_id"`
}

// Execute subscribes to every item and order topic and forwards each event as
// an SSE message named after its topic. Events belonging to the connected
// tenant additionally trigger a refreshed dashboard summary push. The
// connection stays open until the client disconnects.
func (h *StreamHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.JSON(w, http.StatusInternalServerError, ErrorResponse{Error: "streaming unsupported"})
		return
	}

	ctx := r.Context()
	out := make(chan streamEvent, 16)
	for _, topic := range streamTopics {
		msgs, err := h.bus.Messages(ctx, topic)
		if err != nil {
			httpx.JSON(w, http.StatusInternalServerError, ErrorResponse{Error: "stream subscription failed"})
			return
		}
		go func(topic string) {
			for msg := range msgs {
				select {
				case out <- streamEvent{topic: topic, payload: msg.Payload}:
				case <-ctx.Done():
				}
				msg.Ack()
			}
		}(topic)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-out:
			// The bus carries every tenant's events; only this tenant's
			// may reach the client.
			var env tenantEnvelope
			if err := json.Unmarshal(ev.payload, &env); err != nil || env.TenantID != tenantID {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.topic, ev.payload)

			if summary, err := h.svc.Summary(ctx, tenantID); err == nil {
				if data, err := json.Marshal(summary); err == nil {
					fmt.Fprintf(w, "event: summary\ndata: %s\n\n", data)
				}
			} else {
				h.log.WarnContext(ctx, "summary refresh for stream failed", "error", err)
			}
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
