// Package events provides an in-process pub/sub EventBus built on Watermill's
// gochannel transport.
//
// Delivery semantics: every subscriber of a topic receives every message
// published after it subscribed (broadcast, no persistence). This matches the
// application's storage model — all state is process-local, so there is no
// cross-process delivery to arrange.
//
// Handlers should be idempotent. On failure the handler is retried up to 3
// times with exponential backoff before the error is surfaced on the error
// channel.
//
// OTel context propagation: trace context is injected into message metadata on
// Publish and extracted in Subscribe, so spans continue across the bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 10 * time.Second
	channelBuffer   = 64
)

// EventBus is an in-process pub/sub bus. Messages are JSON-encoded domain
// event payloads; the topic names live with each bounded context's
// domain/events package.
type EventBus struct {
	pubSub *gochannel.GoChannel
	log    logger.Logger
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewEventBus creates an EventBus backed by buffered in-memory channels.
func NewEventBus(log logger.Logger) *EventBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: channelBuffer},
		&slogAdapter{log: log},
	)
	return &EventBus{pubSub: pubSub, log: log}
}

// Publish JSON-encodes payload and sends it to topic. OTel trace context from
// ctx is injected into the message metadata so subscribers can restore the
// trace and continue the span tree.
func (q *EventBus) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal payload for %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	if err := q.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Messages returns the raw subscription channel for topic. Intended for
// request-scoped consumers (the SSE stream) that want each message exactly as
// delivered and tie the subscription lifetime to ctx.
func (q *EventBus) Messages(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch, err := q.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}
	return ch, nil
}

// Subscribe registers handler to process messages from topic asynchronously.
// The handler receives a context with the publisher's OTel trace restored from
// message metadata.
//
// Ack/Nack is managed by the bus:
//   - handler returns nil   → Ack (message consumed)
//   - handler returns error → retried up to 3× with exponential backoff (1s, 2s, 4s)
//   - all retries exhausted → Nack + error forwarded to the returned channel
//
// The returned error channel is buffered (capacity 100). Callers must drain it:
//
//	errCh, err := bus.Subscribe(ctx, topic, handler)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "subscriber error", "error", err) } }()
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	propagator := otel.GetTextMapPropagator()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			// Restore the publisher's trace context from message metadata.
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, retryBaseDelay, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
			} else {
				msg.Ack()
			}
		}
	}()

	return errCh, nil
}

// retryWithBackoff calls handler up to maxRetries times with exponential backoff.
// Returns nil on first success; returns the last error after all retries exhaust.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler func(context.Context, *message.Message) error,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt < maxRetries {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"attempt", attempt,
				"max_retries", maxRetries,
				"next_delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping reports whether the bus is still accepting messages.
func (q *EventBus) Ping(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return fmt.Errorf("events: bus closed")
	}
	return nil
}

// Close shuts down the bus: the underlying channels are closed first, then
// in-flight handlers get up to 10 s to finish.
func (q *EventBus) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	if err := q.pubSub.Close(); err != nil {
		return fmt.Errorf("events: close pubsub: %w", err)
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}
	return nil
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
