package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventPublisher emits CRM domain events. Publishing is best-effort: the
// originating write has already committed by the time an event goes out.
type EventPublisher interface {
	PublishSaleRecorded(event SaleRecordedEvent) error
	PublishReferralConverted(event ReferralConvertedEvent) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishSaleRecorded(event SaleRecordedEvent) error {
	return k.publish(event.OwnerID, event)
}

func (k *KafkaPublisher) PublishReferralConverted(event ReferralConvertedEvent) error {
	return k.publish(event.OwnerID, event)
}

func (k *KafkaPublisher) publish(key string, event interface{}) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: msg,
		Time:  time.Now(),
	})
}

// NoopPublisher backs deployments with eventing disabled, and tests.
type NoopPublisher struct{}

func (NoopPublisher) PublishSaleRecorded(SaleRecordedEvent) error { return nil }

func (NoopPublisher) PublishReferralConverted(ReferralConvertedEvent) error { return nil }
