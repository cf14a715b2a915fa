package mq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// EventsExchange is the topic exchange every channel is routed through.
	EventsExchange = "shoreline.events"
	// DeadLetterExchange receives messages whose handler failed twice.
	DeadLetterExchange = "shoreline.events.dead"
	deadQueueSuffix    = ".dead"
)

// RabbitMQClient publishes and consumes channel messages over one AMQP
// connection. Each channel maps to a queue bound to EventsExchange under the
// channel name, with a sibling "<channel>.dead" queue for failed messages.
type RabbitMQClient struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	durable  bool
	autoDel  bool
	mu       sync.Mutex
	declared map[string]bool
}

// NewRabbitMQClient dials the broker and declares the exchanges.
func NewRabbitMQClient(cfg config.RabbitMQConfig) (*RabbitMQClient, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	client := &RabbitMQClient{
		conn:     conn,
		ch:       ch,
		durable:  cfg.QueueDurable,
		autoDel:  cfg.QueueAutoDelete,
		declared: make(map[string]bool),
	}
	if err := client.setup(cfg.PrefetchCount); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (r *RabbitMQClient) setup(prefetch int) error {
	if prefetch > 0 {
		if err := r.ch.Qos(prefetch, 0, false); err != nil {
			return fmt.Errorf("set prefetch: %w", err)
		}
	}
	for _, name := range []string{EventsExchange, DeadLetterExchange} {
		if err := r.ch.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", name, err)
		}
	}
	return nil
}

// Publish routes data to the channel's queue. The returned id is the AMQP
// message id.
func (r *RabbitMQClient) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	if err := r.ensureChannel(channel); err != nil {
		return "", err
	}

	msg := amqp.Publishing{
		ContentType:  "application/octet-stream",
		DeliveryMode: amqp.Transient,
		MessageId:    uuid.NewString(),
		Headers:      amqp.Table{},
		Body:         data,
	}
	if r.durable {
		msg.DeliveryMode = amqp.Persistent
	}
	for key, value := range attrs {
		if key == "content-type" {
			msg.ContentType = value
			continue
		}
		msg.Headers[key] = value
	}

	if err := r.ch.PublishWithContext(ctx, EventsExchange, channel, false, false, msg); err != nil {
		return "", fmt.Errorf("publish to %s: %w", channel, err)
	}
	return msg.MessageId, nil
}

// Subscribe consumes the channel's queue until ctx is done. A failed message
// is redelivered once and dead-lettered on its second failure.
func (r *RabbitMQClient) Subscribe(ctx context.Context, channel string, handler Handler) error {
	if err := r.ensureChannel(channel); err != nil {
		return err
	}

	tag := "shoreline-" + uuid.NewString()
	deliveries, err := r.ch.Consume(channel, tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", channel, err)
	}
	defer func() {
		_ = r.ch.Cancel(tag, false)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			r.dispatch(ctx, channel, delivery, handler)
		}
	}
}

func (r *RabbitMQClient) dispatch(ctx context.Context, channel string, delivery amqp.Delivery, handler Handler) {
	attrs := headersToAttributes(delivery.Headers)
	if delivery.ContentType != "" {
		if attrs == nil {
			attrs = map[string]string{}
		}
		attrs["content-type"] = delivery.ContentType
	}

	err := handler(ctx, Message{ID: delivery.MessageId, Data: delivery.Body, Attributes: attrs})
	if err == nil {
		_ = delivery.Ack(false)
		return
	}

	retry := !delivery.Redelivered
	logger.Log.Warnw("message handler failed",
		"queue", channel,
		"message_id", delivery.MessageId,
		"retry", retry,
		"error", err,
	)
	_ = delivery.Nack(false, retry)
}

// ensureChannel declares the queue pair for channel once per client.
func (r *RabbitMQClient) ensureChannel(channel string) error {
	if strings.TrimSpace(channel) == "" {
		return errors.New("rabbitmq channel is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.declared[channel] {
		return nil
	}

	dead := channel + deadQueueSuffix
	if _, err := r.ch.QueueDeclare(dead, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", dead, err)
	}
	if err := r.ch.QueueBind(dead, channel, DeadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", dead, err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    DeadLetterExchange,
		"x-dead-letter-routing-key": channel,
	}
	if _, err := r.ch.QueueDeclare(channel, r.durable, r.autoDel, false, false, args); err != nil {
		return fmt.Errorf("declare queue %s: %w", channel, err)
	}
	if err := r.ch.QueueBind(channel, channel, EventsExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", channel, err)
	}

	r.declared[channel] = true
	return nil
}

// Close closes the channel and then the connection.
func (r *RabbitMQClient) Close() error {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn.Close()
	}
	return nil
}

func headersToAttributes(headers amqp.Table) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(headers))
	for key, value := range headers {
		switch typed := value.(type) {
		case string:
			attrs[key] = typed
		case []byte:
			attrs[key] = string(typed)
		default:
			attrs[key] = fmt.Sprint(value)
		}
	}
	return attrs
}
