package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/deals-api/internal/config"
	"github.com/nguyentranbao-ct/deals-api/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

// QueryEvent is the analytics record emitted after each successful deals
// request. It never blocks or fails the request that produced it.
type QueryEvent struct {
	Collection string    `json:"collection,omitempty"`
	Query      string    `json:"query,omitempty"`
	Limit      int       `json:"limit"`
	Factor     int       `json:"factor"`
	Results    int       `json:"results"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

type Producer interface {
	Publish(ctx context.Context, event QueryEvent)
}

type queryProducer struct {
	writer  *kafka.Writer
	metrics *prometheus.HistogramVec
	topic   string
}

// NewProducer creates the query-event producer. When Kafka is disabled in
// config it degrades to a noop so the rest of the service wires identically.
func NewProducer(lc fx.Lifecycle, cfg *config.Config) (Producer, error) {
	if !cfg.Kafka.Enabled {
		return &noopProducer{}, nil
	}

	metrics, err := util.GetHistogramVec("kafka_query_events_published", "status", "topic")
	if err != nil {
		return nil, fmt.Errorf("get histogram vec: %w", err)
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
		Async:    true,
	}
	writer.Completion = func(messages []kafka.Message, err error) {
		if err != nil {
			log.Errorw(context.Background(), "failed to publish query events",
				"error", err, "count", len(messages))
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})

	return &queryProducer{
		writer:  writer,
		metrics: metrics,
		topic:   cfg.Kafka.Topic,
	}, nil
}

func (p *queryProducer) Publish(ctx context.Context, event QueryEvent) {
	start := time.Now()
	value, err := json.Marshal(event)
	if err != nil {
		log.Errorw(ctx, "failed to marshal query event", "error", err)
		return
	}

	// Async writer: WriteMessages enqueues and returns, delivery errors
	// land in the Completion callback.
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		log.Errorw(ctx, "failed to enqueue query event", "error", err)
		p.metrics.WithLabelValues("error", p.topic).Observe(time.Since(start).Seconds())
		return
	}
	p.metrics.WithLabelValues("ok", p.topic).Observe(time.Since(start).Seconds())
}

type noopProducer struct{}

func (noopProducer) Publish(context.Context, QueryEvent) {}
