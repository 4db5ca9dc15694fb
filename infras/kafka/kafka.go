package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"roomapi/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.opentelemetry.io/otel"
)

const (
	writeTimeout = 5 * time.Second
	batchTimeout = 50 * time.Millisecond
)

// Message is one event. Value is published as JSON.
type Message struct {
	Key   string
	Value any
}

// ToKafkaMessage encodes the value as JSON for topic.
func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("encode message %q: %w", m.Key, err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: value,
	}, nil
}

// Client publishes events. Delivery is synchronous: SendMessages returns once the brokers acknowledged.
type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type producer struct {
	writer *kafkaGo.Writer
}

// New returns a producer for the configured brokers, or a client that drops messages when Kafka is disabled.
func New(cfg *config.Config) Client {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, events will not be published")

		return noopClient{}
	}

	transport := &kafkaGo.Transport{ClientID: cfg.App.Name}
	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka producer initialized")

	return &producer{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
			BatchTimeout:           batchTimeout,
		},
	}
}

func (p *producer) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	batch := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			return err
		}

		batch = append(batch, WithTraceContext(ctx, msg))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Int("count", len(batch)).Msg("Failed to publish to Kafka")

		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("Published to Kafka")

	return nil
}

func (p *producer) Close() error {
	return p.writer.Close() //nolint:wrapcheck
}

// WithTraceContext copies the span context of ctx into the message headers using the global propagator.
func WithTraceContext(ctx context.Context, msg kafkaGo.Message) kafkaGo.Message {
	otel.GetTextMapPropagator().Inject(ctx, (*headerCarrier)(&msg.Headers))

	return msg
}

// headerCarrier adapts kafka headers to propagation.TextMapCarrier.
type headerCarrier []kafkaGo.Header

func (c *headerCarrier) Get(key string) string {
	for _, header := range *c {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i, header := range *c {
		if header.Key == key {
			(*c)[i].Value = []byte(value)

			return
		}
	}

	*c = append(*c, kafkaGo.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, header := range *c {
		keys = append(keys, header.Key)
	}

	return keys
}

type noopClient struct{}

func (noopClient) SendMessages(context.Context, string, ...Message) error {
	return nil
}

func (noopClient) Close() error {
	return nil
}
