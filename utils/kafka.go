package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/zohaibkhan/booking-calendar-backend/config"
)

var kafkaWriter *kafka.Writer

// BookingChange is the message published on the change feed for every
// successful mutation. Downstream consumers (kitchen display, reminders)
// subscribe to it; nothing is stored on our side.
type BookingChange struct {
	Action  string      `json:"action"` // created | updated | deleted
	DateKey string      `json:"dateKey"`
	Event   interface{} `json:"event,omitempty"`
	EventID string      `json:"eventId,omitempty"`
	At      time.Time   `json:"at"`
}

// InitializeKafka sets up the change-feed writer. A missing KAFKA_BROKERS
// leaves the feed disabled; publishing becomes a no-op.
func InitializeKafka(cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("ℹ️ Kafka not configured, change feed disabled")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}

	log.Printf("✅ Kafka change feed on topic %s", cfg.KafkaTopic)
}

// IsKafkaEnabled reports whether the change feed is active.
func IsKafkaEnabled() bool {
	return kafkaWriter != nil
}

// PublishBookingChange emits one change message, keyed by dateKey so all
// changes for a date land on the same partition. Failures are logged and
// swallowed: the feed is best-effort and never blocks a mutation.
func PublishBookingChange(ctx context.Context, change BookingChange) {
	if kafkaWriter == nil {
		return
	}

	change.At = time.Now().UTC()
	payload, err := json.Marshal(change)
	if err != nil {
		log.Printf("⚠️ Failed to encode booking change: %v", err)
		return
	}

	if err := kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.DateKey),
		Value: payload,
	}); err != nil {
		log.Printf("⚠️ Failed to publish booking change: %v", err)
	}
}

// CloseKafka flushes and closes the writer on shutdown.
func CloseKafka() {
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			log.Printf("⚠️ Kafka writer close: %v", err)
		}
		kafkaWriter = nil
	}
}
