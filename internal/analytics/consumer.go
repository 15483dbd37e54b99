package analytics

import (
	"context"
	"encoding/json"
	"log"

	"warung-pos/internal/domain"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordPaidOrder(ctx context.Context, event domain.OrderEvent) error
}

var _ StoreInterface = (*Store)(nil)

// Consumer reads order lifecycle events from the sales topic and keeps the
// Redis daily aggregates current.
type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting sales analytics consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

// Process folds one event into the aggregates. Cancelled orders carry no
// revenue, so only paid events update the counters.
func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPaid {
		return
	}

	if err := c.Store.RecordPaidOrder(ctx, event); err != nil {
		log.Printf("Error recording paid order %s: %v", event.UUID, err)
		return
	}
	log.Printf("Recorded paid order %s: total=%d items=%d", event.UUID, event.TotalAmount, len(event.Items))
}
