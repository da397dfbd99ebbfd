package events

import (
	"context"
	"fmt"
	"francoggm/payment-gateway/internal/models"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(ctx context.Context, event *models.PaymentEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes payment events keyed by payment id, so every event of
// a payment lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *models.PaymentEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish payment event %s: %w", event.ID, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func newMessage(event *models.PaymentEvent) (kafka.Message, error) {
	payload, err := sonic.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal payment event %s: %w", event.ID, err)
	}

	return kafka.Message{
		Key:   []byte(event.ID),
		Value: payload,
		Time:  event.ProcessedAt,
		Headers: []kafka.Header{
			{Key: "status", Value: []byte(event.Status)},
		},
	}, nil
}
