// Package outbox publishes committed order history entries to the event
// broker.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/history"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/messaging"
)

// Relay polls the outbox and hands every pending entry to the publisher,
// keyed by order id so a consumer sees an order's events in order.
type Relay struct {
	outbox    history.Outbox
	publisher messaging.Publisher
	topic     string

	pollInterval time.Duration
	batchSize    int
	maxAttempts  int

	now    func() time.Time
	logger *slog.Logger
}

// Config tunes a Relay.
type Config struct {
	Topic        string
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

func NewRelay(outbox history.Outbox, publisher messaging.Publisher, cfg Config) (*Relay, error) {
	if outbox == nil {
		return nil, errors.New("outbox: store is required")
	}
	if publisher == nil {
		return nil, errors.New("outbox: publisher is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("outbox: topic is required")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("outbox: poll interval must be positive")
	}
	if cfg.BatchSize <= 0 {
		return nil, errors.New("outbox: batch size must be positive")
	}
	if cfg.MaxAttempts <= 0 {
		return nil, errors.New("outbox: max attempts must be positive")
	}

	return &Relay{
		outbox:       outbox,
		publisher:    publisher,
		topic:        cfg.Topic,
		pollInterval: cfg.PollInterval,
		batchSize:    cfg.BatchSize,
		maxAttempts:  cfg.MaxAttempts,
		now:          time.Now,
		logger:       slog.Default(),
	}, nil
}

// Run processes batches until ctx is cancelled. It returns nil on a clean
// shutdown.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	r.logger.InfoContext(ctx, "outbox relay started", "topic", r.topic, "interval", r.pollInterval)
	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "outbox relay stopped")
			return nil
		case <-ticker.C:
			if _, err := r.ProcessBatch(ctx); err != nil && ctx.Err() == nil {
				r.logger.ErrorContext(ctx, "outbox batch failed", "error", err)
			}
		}
	}
}

// ProcessBatch publishes one batch and returns how many entries were
// delivered.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	entries, err := r.outbox.Pending(ctx, r.batchSize, r.maxAttempts)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, e := range entries {
		if err := r.publisher.PublishEvent(ctx, r.topic, e.OrderID, json.RawMessage(e.Payload)); err != nil {
			r.logger.WarnContext(ctx, "outbox publish failed",
				"entry_id", e.ID,
				"order_id", e.OrderID,
				"attempt", e.Attempts+1,
				"error", err,
			)
			if markErr := r.outbox.MarkFailed(ctx, e.ID, err.Error()); markErr != nil {
				r.logger.ErrorContext(ctx, "failed to mark outbox entry as failed", "entry_id", e.ID, "error", markErr)
			}
			continue
		}

		if err := r.outbox.MarkPublished(ctx, e.ID, r.now()); err != nil {
			r.logger.ErrorContext(ctx, "failed to mark outbox entry as published", "entry_id", e.ID, "error", err)
			continue
		}
		published++
	}
	return published, nil
}
