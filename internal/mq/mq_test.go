package mq

import (
	"context"
	"testing"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBackend struct {
	published []Message
	channels  []string
	closed    bool
}

func (b *recordingBackend) Publish(_ context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	b.channels = append(b.channels, channel)
	b.published = append(b.published, Message{ID: "m-1", Data: data, Attributes: attrs})
	return "m-1", nil
}

func (b *recordingBackend) Subscribe(ctx context.Context, channel string, handler Handler) error {
	for _, msg := range b.published {
		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (b *recordingBackend) Close() error {
	b.closed = true
	return nil
}

func TestMQ_DelegatesToBackend(t *testing.T) {
	backend := &recordingBackend{}
	queue := New(backend)
	ctx := context.Background()

	require.True(t, queue.Enabled())
	id, err := queue.Publish(ctx, "notifications.inquiry", []byte(`{}`), map[string]string{"event": "inquiry.received"})
	require.NoError(t, err)
	assert.Equal(t, "m-1", id)
	assert.Equal(t, []string{"notifications.inquiry"}, backend.channels)

	var seen []Message
	require.NoError(t, queue.Subscribe(ctx, "notifications.inquiry", func(_ context.Context, msg Message) error {
		seen = append(seen, msg)
		return nil
	}))
	require.Len(t, seen, 1)
	assert.Equal(t, "inquiry.received", seen[0].Attributes["event"])

	require.NoError(t, queue.Close())
	assert.True(t, backend.closed)
}

func TestMQ_Disabled(t *testing.T) {
	var nilQueue *MQ
	queue := New(nil)
	ctx := context.Background()

	for _, q := range []*MQ{nilQueue, queue} {
		assert.False(t, q.Enabled())
		_, err := q.Publish(ctx, "c", nil, nil)
		assert.ErrorIs(t, err, ErrDisabled)
		assert.ErrorIs(t, q.Subscribe(ctx, "c", nil), ErrDisabled)
		assert.NoError(t, q.Close())
	}
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	queue, err := NewFromConfig(ctx, config.MQConfig{})
	require.NoError(t, err)
	assert.False(t, queue.Enabled())

	_, err = NewFromConfig(ctx, config.MQConfig{Backend: "kafka"})
	assert.Error(t, err)

	_, err = NewFromConfig(ctx, config.MQConfig{Backend: "rabbitmq"})
	assert.Error(t, err)

	_, err = NewFromConfig(ctx, config.MQConfig{Backend: "pubsub"})
	assert.Error(t, err)
}

func TestHeadersToAttributes(t *testing.T) {
	assert.Nil(t, headersToAttributes(nil))

	attrs := headersToAttributes(amqp.Table{
		"event":   "inquiry.received",
		"raw":     []byte("bytes"),
		"attempt": int32(2),
	})
	assert.Equal(t, map[string]string{
		"event":   "inquiry.received",
		"raw":     "bytes",
		"attempt": "2",
	}, attrs)
}
