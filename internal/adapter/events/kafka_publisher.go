package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
)

type stockLogEvent struct {
	LogID          int64     `json:"log_id"`
	ProductID      int64     `json:"product_id"`
	WarehouseID    int64     `json:"warehouse_id"`
	PrincipalID    int64     `json:"principal_id"`
	Action         string    `json:"action"`
	QuantityChange int64     `json:"quantity_change"`
	Timestamp      time.Time `json:"timestamp"`
}

// KafkaPublisher streams committed audit records as JSON. Messages are keyed
// by (warehouse, product) so per-pair ordering survives partitioning.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
	}
}

func (p *KafkaPublisher) PublishStockLog(ctx context.Context, rec domain.StockLog) error {
	payload, err := json.Marshal(stockLogEvent{
		LogID:          rec.ID,
		ProductID:      rec.ProductID,
		WarehouseID:    rec.WarehouseID,
		PrincipalID:    rec.PrincipalID,
		Action:         string(rec.Action),
		QuantityChange: rec.QuantityChange,
		Timestamp:      rec.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal stock log event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d:%d", rec.WarehouseID, rec.ProductID)),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
