package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/foliocraft/backend/internal/config"
)

const TopicPortfolioEvents = "portfolio.events"

// PortfolioEvent is emitted when a portfolio crosses the publish boundary in
// either direction.
type PortfolioEvent struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	Username   string    `json:"username"`
	Published  bool      `json:"published"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is what the save path needs; the Kafka producer implements it
// and tests swap in a recorder.
type Publisher interface {
	PortfolioPublished(ctx context.Context, evt PortfolioEvent) error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(cfg config.Config) (*KafkaProducer, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducer{writer: writer}, nil
}

func (p *KafkaProducer) PortfolioPublished(ctx context.Context, evt PortfolioEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.OwnerID.String()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write portfolio event: %w", err)
	}
	return nil
}

func (p *KafkaProducer) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
}
