package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// StatusApplier moves an order to the status carried by an event.
type StatusApplier interface {
	Apply(ctx context.Context, event OrderStatusChangedEvent) error
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaConsumer struct {
	reader    MessageReader
	applier   StatusApplier
	logger    *zap.Logger
	retryWait time.Duration
}

func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func NewKafkaConsumer(reader MessageReader, applier StatusApplier, logger *zap.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader:    reader,
		applier:   applier,
		logger:    logger,
		retryWait: time.Second,
	}
}

// Run consumes until ctx is cancelled. Messages are committed only after they
// were handled; malformed or rejected ones are committed too so they do not
// block the partition. A transient failure blocks the partition until the
// message goes through.
func (kc *KafkaConsumer) Run(ctx context.Context) error {
	defer kc.reader.Close()
	kc.logger.Info("Kafka consumer started")

	for {
		msg, err := kc.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				kc.logger.Info("Kafka consumer stopped")
				return nil
			}
			kc.logger.Error("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(kc.retryWait):
			}
			continue
		}

		if !kc.handle(ctx, msg) {
			kc.logger.Info("Kafka consumer stopped")
			return nil
		}

		if err := kc.reader.CommitMessages(ctx, msg); err != nil {
			kc.logger.Error("Error committing message", zap.Error(err))
		}
	}
}

// handle processes msg until it succeeds or proves unprocessable, retrying
// transient failures in place so later offsets are never committed past it.
// It reports false only when ctx ends first.
func (kc *KafkaConsumer) handle(ctx context.Context, msg kafka.Message) bool {
	for attempt := 1; ; attempt++ {
		err := kc.processMessage(ctx, msg)
		if err == nil {
			return true
		}

		fields := []zap.Field{
			zap.Error(err),
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
		}
		if errors.Is(err, ErrUnprocessable) {
			kc.logger.Error("Skipping unprocessable message", fields...)
			return true
		}
		kc.logger.Warn("Error processing message, retrying", fields...)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(kc.retryWait):
		}
	}
}

// ErrUnprocessable marks messages that can never be applied. They are
// committed and skipped.
var ErrUnprocessable = errors.New("unprocessable message")

func (kc *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var event OrderStatusChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: failed to unmarshal event: %v", ErrUnprocessable, err)
	}
	if event.OrderID == "" || !event.Status.Valid() {
		return fmt.Errorf("%w: order %q status %q", ErrUnprocessable, event.OrderID, event.Status)
	}

	kc.logger.Info("Processing order status event",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID),
		zap.String("status", event.Status.String()))

	if err := kc.applier.Apply(ctx, event); err != nil {
		if errors.Is(err, domain.ErrInvalidStatusTransition) {
			return fmt.Errorf("%w: %v", ErrUnprocessable, err)
		}
		return err
	}
	return nil
}
