package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// LoggingPublisher writes events to the log instead of a broker. Used when no
// brokers are configured.
type LoggingPublisher struct {
	Logger *slog.Logger
}

func (p LoggingPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "event published", "topic", topic, "key", key, "payload", string(payload))
	return nil
}
