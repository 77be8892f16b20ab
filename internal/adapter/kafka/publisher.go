// Package kafka publishes journal lifecycle events to the message bus.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/openjournal/journal-backend/internal/config"
)

// eventSource identifies this service in published events.
const eventSource = "journal-backend"

// EntryCreatedEvent is the payload published when a journal entry is created.
// Field names are part of the wire contract with downstream consumers.
type EntryCreatedEvent struct {
	EntryID   uuid.UUID `json:"entryId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Source    string    `json:"source"`
}

// Publisher writes entry.created events to a Kafka topic.
// Delivery is best effort: callers log and drop errors.
type Publisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// NewPublisher creates a Publisher from KafkaConfig.
// Returns nil when no brokers are configured; a nil Publisher means
// publishing is disabled and its methods are safe to call.
func NewPublisher(cfg config.KafkaConfig) *Publisher {
	if cfg.Brokers == "" {
		return nil
	}

	brokers := strings.Split(cfg.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.PublishTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer, timeout: cfg.PublishTimeout}
}

// PublishEntryCreated writes one event, keyed by entry id, with a bounded
// timeout.
func (p *Publisher) PublishEntryCreated(ctx context.Context, entryID uuid.UUID, userID, content string, createdAt time.Time) error {
	if p == nil {
		return nil
	}

	event := EntryCreatedEvent{
		EntryID:   entryID,
		UserID:    userID,
		Content:   content,
		CreatedAt: createdAt,
		Source:    eventSource,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal entry.created event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntryID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish entry.created: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
