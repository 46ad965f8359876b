package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

type KafkaConfig struct {
	Brokers    []string
	Topic      string
	Username   string
	Password   string
	Mechanism  string
	TLSEnabled bool
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ domain.PublisherPort = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}

	transport := &kafka.Transport{}
	if cfg.TLSEnabled {
		transport.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if cfg.Username != "" {
		mechanism, err := saslMechanism(cfg.Mechanism, cfg.Username, cfg.Password)
		if err != nil {
			return nil, err
		}
		transport.SASL = mechanism
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Transport:    transport,
		},
	}, nil
}

func saslMechanism(name, username, password string) (sasl.Mechanism, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "PLAIN":
		return plain.Mechanism{Username: username, Password: password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, username, password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, username, password)
	default:
		return nil, fmt.Errorf("kafka: unsupported sasl mechanism %q", name)
	}
}

func (k *KafkaPublisher) Publish(ctx context.Context, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
		})
	}

	return k.writer.WriteMessages(ctx, km...)
}

// PublishEscrow keys messages by escrow ID so one escrow's events stay ordered.
func (k *KafkaPublisher) PublishEscrow(ctx context.Context, event EscrowEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(ctx, domain.Message{Key: []byte(event.EscrowID), Value: v})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
