// Package kafka provides an eventstream publisher backed by Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	segmentio "github.com/segmentio/kafka-go"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream"
)

// DefaultTopic is the Kafka topic for answered turns.
const DefaultTopic = "dataagent.turns"

// Publisher ships turn events to a Kafka topic, keyed by event ID.
type Publisher struct {
	writer *segmentio.Writer
	logger *slog.Logger
}

// Config holds Kafka publisher configuration.
type Config struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string

	// Topic is the destination topic. Defaults to DefaultTopic if empty.
	Topic string
}

// NewPublisher creates a Kafka-backed turn event publisher.
func NewPublisher(c Config, logger *slog.Logger) (*Publisher, error) {
	if len(c.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}

	topic := c.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	writer := &segmentio.Writer{
		Addr:     segmentio.TCP(c.Brokers...),
		Topic:    topic,
		Balancer: &segmentio.LeastBytes{},
	}

	logger.Info("kafka publisher ready",
		"brokers", c.Brokers,
		"topic", topic,
	)

	return &Publisher{
		writer: writer,
		logger: logger,
	}, nil
}

// PublishTurn marshals the event and writes it to the topic.
func (p *Publisher) PublishTurn(ctx context.Context, event *eventstream.TurnAnsweredEvent) error {
	if event == nil {
		return eventstream.ErrNilTurnEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling turn event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, segmentio.Message{
		Key:   []byte(event.EventID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("writing turn event: %w", err)
	}

	p.logger.Debug("published turn event", "event_id", event.EventID)

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Ensure Publisher implements eventstream.Publisher
var _ eventstream.Publisher = (*Publisher)(nil)
