package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"culturehub/internal/checkout"

	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingOrderConfirmed = "order.confirmed"

// Broker publishes JSON messages to a durable direct exchange. The connection
// is re-established on the next publish after it drops.
type Broker struct {
	log      *slog.Logger
	url      string
	exchange string
	queue    string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func New(log *slog.Logger, url, exchange, queue string) (*Broker, error) {
	b := &Broker{
		log:      log.With(slog.String("component", "broker")),
		url:      url,
		exchange: exchange,
		queue:    queue,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.connect(); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Broker) connect() error {
	const op = "broker.connect"

	conn, err := amqp.Dial(b.url)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to rabbitmq: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%s: failed to open channel: %w", op, err)
	}

	if err = ch.ExchangeDeclare(b.exchange, "direct", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%s: failed to declare exchange: %w", op, err)
	}

	if _, err = ch.QueueDeclare(b.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%s: failed to declare queue: %w", op, err)
	}

	if err = ch.QueueBind(b.queue, RoutingOrderConfirmed, b.exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%s: failed to bind queue: %w", op, err)
	}

	b.conn = conn
	b.channel = ch

	return nil
}

func (b *Broker) Publish(ctx context.Context, routingKey string, message any) error {
	const op = "broker.Publish"

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal message: %w", op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() || b.channel == nil || b.channel.IsClosed() {
		if err = b.connect(); err != nil {
			return err
		}
	}

	err = b.channel.PublishWithContext(ctx, b.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%s: failed to publish message: %w", op, err)
	}

	b.log.Debug("message published", slog.String("routing_key", routingKey))

	return nil
}

func (b *Broker) OrderConfirmed(ctx context.Context, confirmation checkout.Confirmation) error {
	return b.Publish(ctx, RoutingOrderConfirmed, confirmation)
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		if err := b.channel.Close(); err != nil {
			return err
		}
	}
	if b.conn != nil {
		return b.conn.Close()
	}

	return nil
}
