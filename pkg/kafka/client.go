// Package kafka publishes and consumes chat exchange events.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"vaccine-village-go/internal/config"
	"vaccine-village-go/pkg/events"
	"vaccine-village-go/pkg/log"

	"github.com/segmentio/kafka-go"
)

// maxAttempts is how many times a failing event is retried before its
// offset is committed anyway.
const maxAttempts = 3

// EventProcessor handles one decoded event.
type EventProcessor interface {
	Process(ctx context.Context, ev events.ChatExchange) error
}

// AttemptCounter tracks failed processing attempts per event.
type AttemptCounter interface {
	IncrAttempts(ctx context.Context, eventID string) (int64, error)
	ClearAttempts(ctx context.Context, eventID string) error
}

func brokerList(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Producer writes chat exchange events to the configured topic.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a Producer. Messages are keyed by message id.
func NewProducer(cfg config.KafkaConfig) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokerList(cfg.Brokers)...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
	}
	log.Infof("Kafka producer ready, topic '%s'", cfg.Topic)
	return &Producer{writer: w}
}

// PublishChatExchange sends ev.
func (p *Producer) PublishChatExchange(ctx context.Context, ev events.ChatExchange) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.MessageID),
		Value: b,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// StartConsumer reads events until ctx is cancelled. Offsets are committed
// after successful processing, after a malformed message, or once an event
// has failed maxAttempts times.
func StartConsumer(ctx context.Context, cfg config.KafkaConfig, processor EventProcessor, attempts AttemptCounter) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokerList(cfg.Brokers),
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("Failed to close Kafka consumer", err)
		}
	}()

	log.Infof("Kafka consumer started, topic '%s', group '%s'", cfg.Topic, cfg.GroupID)

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info("Kafka consumer stopped")
				return
			}
			log.Error("Failed to read from Kafka", err)
			return
		}

		if !handleMessage(ctx, m, processor, attempts) {
			continue
		}
		if err := r.CommitMessages(ctx, m); err != nil {
			log.Error("Failed to commit Kafka offset", err)
		}
	}
}

// handleMessage processes m and reports whether its offset should be committed.
func handleMessage(ctx context.Context, m kafka.Message, processor EventProcessor, attempts AttemptCounter) bool {
	var ev events.ChatExchange
	if err := json.Unmarshal(m.Value, &ev); err != nil || ev.MessageID == "" {
		log.Warnw("Dropping malformed chat event", "offset", m.Offset, "value", string(m.Value))
		return true
	}

	if err := processor.Process(ctx, ev); err != nil {
		log.Errorf("Failed to process chat event %s: %v", ev.MessageID, err)
		n, incErr := attempts.IncrAttempts(ctx, ev.MessageID)
		if incErr != nil {
			// leave it uncommitted and let Kafka redeliver
			return false
		}
		if n >= maxAttempts {
			log.Errorf("Chat event %s failed %d times, giving up", ev.MessageID, n)
			return true
		}
		return false
	}

	_ = attempts.ClearAttempts(ctx, ev.MessageID)
	return true
}
