package mq

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Disposition tells the consumer how to settle a delivery.
type Disposition int

const (
	Ack Disposition = iota
	// Reject drops the message; redelivery would fail the same way.
	Reject
	// Requeue returns the message to the queue for another attempt.
	Requeue
)

func (d Disposition) String() string {
	switch d {
	case Ack:
		return "ack"
	case Reject:
		return "reject"
	case Requeue:
		return "requeue"
	default:
		return "unknown"
	}
}

// DeliveryHandler decides the fate of one message.
type DeliveryHandler interface {
	Handle(ctx context.Context, routingKey string, body []byte) Disposition
}

type ConsumerConfig struct {
	URL      string
	Exchange string
	Queue    string
	Keys     []string
	Prefetch int
}

type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewConsumer declares a durable queue bound to each routing key on the exchange.
func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	conn, ch, err := dialExchange(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = closeAll(ch, conn)
		return nil, errs.Wrap(err, "declare queue")
	}
	for _, key := range cfg.Keys {
		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			_ = closeAll(ch, conn)
			return nil, errs.Wrap(err, "bind "+key)
		}
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 8
	}
	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		_ = closeAll(ch, conn)
		return nil, errs.Wrap(err, "set qos")
	}
	return &Consumer{conn: conn, ch: ch, queue: q.Name}, nil
}

// Run settles deliveries through h until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context, h DeliveryHandler) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			disp := h.Handle(ctx, d.RoutingKey, d.Body)
			if err := settle(d, disp); err != nil {
				slog.ErrorContext(ctx, "failed to settle delivery",
					"consumer", c.queue, "routing_key", d.RoutingKey, "disposition", disp.String(), "error", err)
			}
		}
	}
}

func (c *Consumer) Close() error {
	return closeAll(c.ch, c.conn)
}

func settle(d amqp.Delivery, disp Disposition) error {
	switch disp {
	case Reject:
		return d.Nack(false, false)
	case Requeue:
		return d.Nack(false, true)
	default:
		return d.Ack(false)
	}
}
