package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, NewSaramaConfig())
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "sso-anythingllm.user.events" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "kc-1" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewFromSyncProducer(sp, "sso-anythingllm.user.events")
	require.NoError(t, p.Publish([]byte("kc-1"), []byte(`{"type":"user.created"}`)))

	err := p.Publish([]byte("kc-2"), []byte(`{}`))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	assert.NoError(t, p.HealthCheck())
	require.NoError(t, p.Close())
}

func TestNewProducerValidation(t *testing.T) {
	_, err := NewProducer(Config{Topic: "t"})
	assert.ErrorIs(t, err, ErrBrokersRequired)

	_, err = NewProducer(Config{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrTopicRequired)
}

func TestNop(t *testing.T) {
	p := NewNop()
	assert.NoError(t, p.Publish([]byte("k"), []byte("v")))
	assert.NoError(t, p.HealthCheck())
	assert.NoError(t, p.Close())
}

func TestUninitialized(t *testing.T) {
	p := &producerImpl{topic: "t"}
	assert.ErrorIs(t, p.Publish(nil, nil), ErrNotInitialized)
	assert.ErrorIs(t, p.HealthCheck(), ErrNotInitialized)
	assert.NoError(t, p.Close())
}
