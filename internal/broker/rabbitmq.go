package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// publishTimeout bounds every publish call so a stalled broker connection
// can never pin a caller indefinitely.
const publishTimeout = 5 * time.Second

// Topology names, kept identical across environments: a fanout exchange
// broadcasts every event to whatever workers are listening, while a
// direct exchange routes per-recipient delivery commands to the single
// messages queue.
const (
	eventsExchange   = "broadcast_events_exchange"
	eventsQueue      = "broadcast_events"
	deliveryExchange = "telegram_broadcast_exchange"
	deliveryQueue    = "telegram_broadcast"
	deliveryRouting  = "broadcast"
)

// Broker owns the AMQP connection and declares the fixed topology above
// on startup, so any consumer or producer can assume it already exists.
type Broker struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logger.Logger
}

func Connect(url string, log logger.Logger) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	b := &Broker{conn: conn, ch: ch, logger: log}
	if err = b.declareTopology(); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare topology: %w", err)
	}

	return b, nil
}

func (b *Broker) declareTopology() error {
	if err := b.ch.ExchangeDeclare(eventsExchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare events exchange: %w", err)
	}
	if _, err := b.ch.QueueDeclare(eventsQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare events queue: %w", err)
	}
	if err := b.ch.QueueBind(eventsQueue, "", eventsExchange, false, nil); err != nil {
		return fmt.Errorf("bind events queue: %w", err)
	}

	if err := b.ch.ExchangeDeclare(deliveryExchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare delivery exchange: %w", err)
	}
	if _, err := b.ch.QueueDeclare(deliveryQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare delivery queue: %w", err)
	}
	if err := b.ch.QueueBind(deliveryQueue, deliveryRouting, deliveryExchange, false, nil); err != nil {
		return fmt.Errorf("bind delivery queue: %w", err)
	}

	return nil
}

func (b *Broker) PublishEvent(ctx context.Context, e *domain.BroadcastEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = b.ch.PublishWithContext(ctx, eventsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (b *Broker) PublishDelivery(ctx context.Context, cmd *domain.DeliveryCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal delivery command: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = b.ch.PublishWithContext(ctx, deliveryExchange, deliveryRouting, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish delivery command: %w", err)
	}
	return nil
}

// ConsumeEvents opens the single-consumer channel the Event Worker reads
// from. Per-broadcast ordering follows from there being exactly one
// consumer on this queue.
func (b *Broker) ConsumeEvents(consumerTag string) (<-chan amqp.Delivery, error) {
	deliveries, err := b.ch.Consume(eventsQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume events queue: %w", err)
	}
	return deliveries, nil
}

// ConsumeDeliveries opens the messages channel with prefetch=1, so each
// Delivery Worker instance has exactly one in-flight send at a time.
func (b *Broker) ConsumeDeliveries(consumerTag string) (<-chan amqp.Delivery, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open delivery channel: %w", err)
	}
	if err = ch.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.Consume(deliveryQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume delivery queue: %w", err)
	}
	return deliveries, nil
}

func (b *Broker) Close() error {
	if err := b.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	if err := b.conn.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}
