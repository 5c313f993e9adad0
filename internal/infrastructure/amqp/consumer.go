package amqp

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// MessageHandler takes ownership of a delivery and must ack or nack it.
type MessageHandler interface {
	Handle(ctx context.Context, delivery *amqp.Delivery)
}

// Consumer consumes messages from RabbitMQ
type Consumer struct {
	client   *Client
	handler  MessageHandler
	prefetch int
	channel  *amqp.Channel
	done     chan struct{}
}

// NewConsumer creates a consumer that keeps at most prefetch unacknowledged deliveries in flight.
func NewConsumer(client *Client, handler MessageHandler, prefetch int) *Consumer {
	if prefetch < 1 {
		prefetch = 1
	}
	return &Consumer{
		client:   client,
		handler:  handler,
		prefetch: prefetch,
		done:     make(chan struct{}),
	}
}

// Consume starts consuming messages from a queue on a dedicated channel.
// Cancelling ctx stops deliveries but keeps the channel open so handlers can still ack;
// Done is closed once the delivery loop exits and Close releases the channel.
func (c *Consumer) Consume(ctx context.Context, queueName string) error {
	ch, err := c.client.OpenChannel()
	if err != nil {
		return err
	}

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		ch.Close()
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.ConsumeWithContext(
		ctx,
		queueName,
		"",    // consumer tag (auto-generated)
		false, // auto-ack (we'll manually ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return fmt.Errorf("failed to register consumer: %w", err)
	}
	c.channel = ch

	log.WithFields(log.Fields{"queue": queueName, "prefetch": c.prefetch}).Info("Started consuming messages")

	go func() {
		defer close(c.done)
		for {
			select {
			case <-ctx.Done():
				log.Info("Consumer stopped due to context cancellation")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Warn("Message channel closed")
					return
				}
				log.WithFields(log.Fields{
					"routingKey": msg.RoutingKey,
					"messageId":  msg.MessageId,
				}).Debug("Processing message")
				c.handler.Handle(ctx, &msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) Done() <-chan struct{} {
	return c.done
}

func (c *Consumer) Close() error {
	if c.channel == nil || c.channel.IsClosed() {
		return nil
	}
	return c.channel.Close()
}
