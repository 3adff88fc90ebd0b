// Package events publishes post lifecycle events. Publishing is
// best-effort: resolvers log failures and carry on, the write path
// never depends on the broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

const (
	TypePostCreated = "post.created"
	TypePostDeleted = "post.deleted"
)

// PostEvent is the JSON payload written for every post mutation.
type PostEvent struct {
	Type      string    `json:"type"`
	PostID    string    `json:"postId"`
	CreatorID string    `json:"creatorId"`
	Title     string    `json:"title,omitempty"`
	At        time.Time `json:"at"`
}

// Writer is the subset of the kafka writer the publisher needs, kept
// small so tests can inject a fake.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher is what the resolvers publish through.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// KafkaPublisher writes JSON-encoded events to a single topic.
type KafkaPublisher struct {
	writer Writer
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher connects a publisher to the given broker and topic.
func NewKafkaPublisher(brokerURL, topic string) *KafkaPublisher {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return &KafkaPublisher{writer: w}
}

// NewKafkaPublisherWithWriter injects a writer. Tests only.
func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := skafka.Message{Key: []byte(key), Value: b}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) Publish(ctx context.Context, key string, value interface{}) error { return nil }
func (NoopPublisher) Close() error                                                     { return nil }
