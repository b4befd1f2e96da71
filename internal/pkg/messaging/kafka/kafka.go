package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/messaging"
)

// Publisher writes JSON encoded events to Kafka. One writer is shared by all
// topics; the topic is set per message.
type Publisher struct {
	writer *kafkaGo.Writer
}

var _ messaging.Publisher = (*Publisher)(nil)

// NewPublisher creates a Kafka publisher for the given brokers.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
	}
}

// PublishEvent marshals event and writes it keyed by key, so every event for
// one order lands on the same partition and keeps its order.
func (p *Publisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", topic, err)
	}
	return nil
}

// Close flushes pending writes and releases the connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
