package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"carrybid/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carrybid",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total number of lifecycle events published to Kafka.",
	}, []string{"type"})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "carrybid",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Total number of failed event publishes.",
	})
)

type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// Publish writes one event keyed by order so per-order ordering survives
// partitioning. The library retries transient broker errors itself.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: value,
	})
	if err != nil {
		eventsFailed.Inc()
		return fmt.Errorf("failed to publish event: %w", err)
	}

	eventsPublished.WithLabelValues(string(e.Type)).Inc()
	p.logger.Debug("event published", slog.String("type", string(e.Type)), slog.String("order_id", e.OrderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
