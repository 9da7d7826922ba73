package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

func validateConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return ErrBrokersRequired
	}
	if cfg.Topic == "" {
		return ErrTopicRequired
	}
	return nil
}

// NewSaramaConfig returns the producer settings used by NewProducer.
func NewSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion
	return config
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends a message to the configured topic.
func (p *producerImpl) Publish(key, value []byte) error {
	if p.producer == nil {
		return ErrNotInitialized
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return ErrNotInitialized
	}
	return nil
}

func (nopProducer) Publish(_, _ []byte) error { return nil }
func (nopProducer) Close() error               { return nil }
func (nopProducer) HealthCheck() error         { return nil }
