package kafka

import "github.com/IBM/sarama"

// IProducer publishes keyed messages to one topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a sync producer for cfg.Topic.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewFromSyncProducer wraps an existing sarama producer.
func NewFromSyncProducer(p sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: p, topic: topic}
}

// NewNop returns a producer that drops every message. Used when no brokers are configured.
func NewNop() IProducer {
	return &nopProducer{}
}
