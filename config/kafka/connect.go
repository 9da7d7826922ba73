package kafka

import (
	"fmt"
	"sync"

	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/pkg/kafka"
)

var (
	instance kafka.IProducer
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the shared producer. Without brokers it returns a no-op producer.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		if len(cfg.Brokers) == 0 {
			instance = kafka.NewNop()
			return
		}

		client, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka producer: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the shared producer. Panics before Connect.
func GetClient() kafka.IProducer {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Kafka producer not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck reports whether the shared producer is usable.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("kafka producer not initialized")
	}
	return instance.HealthCheck()
}

// Disconnect closes the shared producer.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	if err := instance.Close(); err != nil {
		return err
	}
	instance = nil
	once = sync.Once{}
	initErr = nil
	return nil
}
