package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
)

const (
	// DeadLetterExchange receives inbound emails that were rejected for good.
	DeadLetterExchange = "reuse.dlx"
	DeadLetterQueue    = "reuse.inbound.dead"
)

// TopologyManager handles the declaration of exchanges, queues, and bindings
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup declares the reuse exchange, the inbound queue and its dead-letter route.
// items.updated events are bound by their subscribers, not here.
func (t *TopologyManager) Setup() error {
	ch := t.client.Channel()

	if err := t.declareExchange(ch, domain.ReuseExchange, amqp.ExchangeTopic); err != nil {
		return err
	}
	if err := t.declareExchange(ch, DeadLetterExchange, amqp.ExchangeFanout); err != nil {
		return err
	}

	if err := t.declareQueue(ch, DeadLetterQueue, nil); err != nil {
		return err
	}
	if err := t.bindQueue(ch, DeadLetterQueue, DeadLetterExchange, ""); err != nil {
		return err
	}

	if err := t.declareQueue(ch, domain.InboundQueue, amqp.Table{
		"x-dead-letter-exchange": DeadLetterExchange,
	}); err != nil {
		return err
	}
	if err := t.bindQueue(ch, domain.InboundQueue, domain.ReuseExchange, domain.RoutingKeyEmailReceived); err != nil {
		return err
	}

	log.Info("AMQP topology setup completed successfully")
	return nil
}

func (t *TopologyManager) declareExchange(ch *amqp.Channel, name, kind string) error {
	err := ch.ExchangeDeclare(
		name,
		kind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithFields(log.Fields{"exchange": name, "kind": kind}).Debug("Exchange declared")
	return nil
}

func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string, args amqp.Table) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		args,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

func (t *TopologyManager) bindQueue(ch *amqp.Channel, queueName, exchangeName, routingKey string) error {
	err := ch.QueueBind(
		queueName,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			queueName, exchangeName, routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      queueName,
		"exchange":   exchangeName,
		"routingKey": routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
