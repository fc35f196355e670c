// Package events publishes task lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const DefaultTaskTopic = "task-events"

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type taskEventMessage struct {
	Type       string    `json:"type"`
	TaskID     string    `json:"task_id"`
	ProjectID  string    `json:"project_id,omitempty"`
	Owner      *string   `json:"owner"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaPublisher struct {
	writer MessageWriter
	topic  string
	logger *zap.Logger
}

// NewKafkaWriter builds a synchronous writer that partitions by task id.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if topic == "" {
		topic = DefaultTaskTopic
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

func NewKafkaPublisher(writer MessageWriter, topic string, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{writer: writer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) PublishTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	value, err := json.Marshal(taskEventMessage{
		Type:       string(event.Type),
		TaskID:     event.TaskID,
		ProjectID:  event.ProjectID,
		Owner:      event.Owner,
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TaskID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return err
	}

	p.logger.Debug("task event published",
		zap.String("topic", p.topic),
		zap.String("type", string(event.Type)),
		zap.String("task_id", event.TaskID),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishTaskEvent(context.Context, domain.TaskEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}

var (
	_ ports.TaskEventPublisher = (*KafkaPublisher)(nil)
	_ ports.TaskEventPublisher = NopPublisher{}
)
