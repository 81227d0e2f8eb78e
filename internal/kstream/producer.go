package kstream

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"motocat-backend/internal/model"
)

const (
	// TopicUpdates carries simulated manufacturer price/status revisions.
	TopicUpdates = "catalog.updates"
	// TopicAlerts carries triggered price-alert notifications.
	TopicAlerts = "alerts.triggered"
)

// kafkaWriter constructs a Kafka producer using segmentio/kafka-go.
// kafka.Writer provides async publishing with automatic batching and retries.
func kafkaWriter(topic string) *kafka.Writer {
	broker := getenv("KAFKA_BROKER", "kafka:9092")
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// PublishPriceUpdate sends one simulated manufacturer revision to the updates
// topic. Keying by motorcycle id keeps updates for the same bike ordered.
func PublishPriceUpdate(ctx context.Context, upd model.PriceUpdate) error {
	w := kafkaWriter(TopicUpdates)
	defer w.Close()

	data, err := json.Marshal(upd)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(upd.MotorcycleID), 10)),
		Value: data,
		Time:  time.Now(),
	}
	return w.WriteMessages(ctx, msg)
}

// PublishAlertTriggered emits a notification event for a matched price alert.
func PublishAlertTriggered(ctx context.Context, evt model.AlertTriggered) error {
	w := kafkaWriter(TopicAlerts)
	defer w.Close()

	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(evt.AlertID),
		Value: data,
		Time:  time.Now(),
	}
	return w.WriteMessages(ctx, msg)
}
