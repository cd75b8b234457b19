package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"venuely/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const readRetryWait = time.Second

// Message is a JSON-encoded record. Records sharing a Key land on the same partition.
type Message struct {
	Key   string
	Value any
}

func (m Message) encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	return kafkaGo.Message{Topic: topic, Key: []byte(m.Key), Value: value}, nil
}

// Decode unmarshals the JSON value of msg into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode message %q: %w", string(msg.Key), err)
	}

	return value, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message))
	Close() error
}

type clientImpl struct {
	cfg    *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	mechanism := saslMechanism(cfg)

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
	}

	if mechanism != nil {
		writer.Transport = &kafkaGo.Transport{SASL: mechanism}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("enabled", cfg.Kafka.Enable).Msg("kafka client initialized")

	return &clientImpl{
		cfg:    cfg,
		dialer: &kafkaGo.Dialer{DualStack: true, SASLMechanism: mechanism},
		writer: writer,
	}
}

// saslMechanism returns nil for brokers without authentication.
func saslMechanism(cfg *config.Config) sasl.Mechanism {
	if cfg.Kafka.SASL.Username == "" {
		return nil
	}

	return plain.Mechanism{
		Username: cfg.Kafka.SASL.Username,
		Password: cfg.Kafka.SASL.Password,
	}
}

func (k *clientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	records := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		record, err := message.encode(topic)
		if err != nil {
			return err
		}

		records = append(records, record)
	}

	if err := k.writer.WriteMessages(ctx, records...); err != nil {
		log.Error().Err(err).Str("topic", topic).Int("count", len(records)).Msg("failed to write kafka messages")

		return fmt.Errorf("failed to write kafka messages: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(records)).Msg("kafka messages written")

	return nil
}

// Consume reads topic as consumerGroup until ctx is done. Each message is committed
// after handler returns, so handler runs once per message in partition order.
func (k *clientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message)) {
	if topic == "" {
		log.Error().Msg("kafka consumer needs a topic")

		return
	}

	if consumerGroup == "" {
		consumerGroup = k.cfg.Kafka.ConsumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.cfg.Kafka.Brokers,
		Topic:       topic,
		GroupID:     consumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to close kafka reader")
		}
	}()

	log.Info().Str("topic", topic).Str("group", consumerGroup).Msg("kafka consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)

		switch {
		case ctx.Err() != nil || errors.Is(err, context.Canceled):
			log.Info().Str("topic", topic).Msg("kafka consumer stopped")

			return
		case err != nil:
			log.Error().Err(err).Str("topic", topic).Msg("failed to read kafka message")

			select {
			case <-ctx.Done():
			case <-time.After(readRetryWait):
			}

			continue
		}

		handler(msg)

		if err = reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("failed to commit kafka message")
		}
	}
}

func (k *clientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
