package kstream

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"motocat-backend/internal/catalog"
	"motocat-backend/internal/model"
)

// kafkaReader creates a Kafka consumer using segmentio/kafka-go.
// kafka.Reader provides consumer-group coordination and offset management.
func kafkaReader(topic, groupID string) *kafka.Reader {
	broker := getenv("KAFKA_BROKER", "kafka:9092")
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
}

// UpdateApplier writes a price update into the catalog store.
type UpdateApplier interface {
	ApplyPriceUpdate(ctx context.Context, upd model.PriceUpdate) error
}

// AlertMatcher finds and retires the active alerts satisfied by a new price.
type AlertMatcher interface {
	MatchActive(ctx context.Context, bikeID uint, newPriceUSD float64) ([]model.PriceAlert, error)
}

// ListInvalidator drops cached catalog listings after an applied update.
type ListInvalidator interface {
	InvalidateLists(ctx context.Context)
}

// AlertPublisher emits AlertTriggered events; indirected for tests.
type AlertPublisher func(ctx context.Context, evt model.AlertTriggered) error

// UpdateConsumer applies catalog.updates events: overwrite the bike's price
// and status fields, invalidate cached listings, then fire any matching price
// alerts. Failures are logged and the message skipped; re-running the bot
// produces a fresh overwrite, so there is no retry machinery.
type UpdateConsumer struct {
	Store        UpdateApplier
	Alerts       AlertMatcher
	Cache        ListInvalidator // may be nil
	PublishAlert AlertPublisher  // defaults to PublishAlertTriggered
}

// Run consumes the updates topic until ctx is canceled.
func (c *UpdateConsumer) Run(ctx context.Context) error {
	reader := kafkaReader(TopicUpdates, "catalog-updater")
	defer reader.Close()

	log.Info().Str("topic", TopicUpdates).Msg("update consumer started")

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := c.Handle(ctx, msg.Value); err != nil {
			log.Error().Err(err).Msg("update handling failed")
		}
	}
}

// Handle processes one raw update message.
func (c *UpdateConsumer) Handle(ctx context.Context, raw []byte) error {
	var upd model.PriceUpdate
	if err := json.Unmarshal(raw, &upd); err != nil {
		return err
	}

	err := c.Store.ApplyPriceUpdate(ctx, upd)
	if stderrors.Is(err, catalog.ErrNotFound) {
		log.Warn().Uint("motorcycle_id", upd.MotorcycleID).Msg("update for unknown motorcycle dropped")
		return nil
	}
	if err != nil {
		return err
	}

	if c.Cache != nil {
		c.Cache.InvalidateLists(ctx)
	}

	matched, err := c.Alerts.MatchActive(ctx, upd.MotorcycleID, upd.BasePriceUSD)
	if err != nil {
		return err
	}
	publish := c.PublishAlert
	if publish == nil {
		publish = PublishAlertTriggered
	}
	for _, alert := range matched {
		evt := model.AlertTriggered{
			AlertID:      alert.ID,
			UserID:       alert.UserID,
			MotorcycleID: alert.MotorcycleID,
			Region:       alert.Region,
			TargetUSD:    alert.TargetPriceUSD,
			NewPriceUSD:  upd.BasePriceUSD,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := publish(ctx, evt); err != nil {
			log.Error().Err(err).Str("alert_id", alert.ID).Msg("publish alert failed")
		}
	}
	if len(matched) > 0 {
		log.Info().Int("alerts", len(matched)).Uint("motorcycle_id", upd.MotorcycleID).Msg("price alerts triggered")
	}
	return nil
}
