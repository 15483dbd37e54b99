package storage

import (
	"context"
	"encoding/json"

	"warung-pos/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes order lifecycle events to the sales topic, keyed by
// order uuid so events for one order stay in partition order.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UUID),
		Value: payload,
	})
}
