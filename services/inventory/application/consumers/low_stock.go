// Package consumers wires domain event subscribers for the inventory context.
package consumers

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/pranavkdileep/inventory-dashboard/pkg/app"
	"github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/events"
)

// RegisterLowStockAlerts subscribes to item mutation topics and logs a
// warning whenever a committed change leaves an item at or below the
// configured low-stock threshold. Dashboards surface low stock on demand;
// this gives operators a push signal in the logs as well.
func RegisterLowStockAlerts(ctx context.Context, a *app.Application) error {
	topics := []string{events.TopicItemCreated, events.TopicItemUpdated}
	handler := handleItemChange(a)

	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("low-stock alert subscriber registered", "topics", topics)
	return nil
}

// handleItemChange returns a handler for item.created and item.updated events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
func handleItemChange(a *app.Application) func(context.Context, *message.Message) error {
	threshold := a.Config.LowStockThreshold
	return func(ctx context.Context, msg *message.Message) error {
		var evt events.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if evt.Quantity <= threshold {
			a.Logger.WarnContext(ctx, "item low on stock",
				"tenant_id", evt.TenantID,
				"item_id", evt.ItemID,
				"name", evt.Name,
				"quantity", evt.Quantity,
				"threshold", threshold,
			)
		}
		return nil
	}
}
