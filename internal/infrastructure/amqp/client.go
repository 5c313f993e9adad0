package amqp

import (
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Client owns one RabbitMQ connection and a shared channel used for plain publishing.
// Consumers and confirm-mode publishers open their own channels.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  chan *amqp.Error
	mu      sync.RWMutex
	url     string
	name    string
}

// NewClient dials the broker. name shows up as the connection name in the management UI.
func NewClient(url, name string) (*Client, error) {
	client := &Client{
		url:  url,
		name: name,
	}

	if err := client.connect(); err != nil {
		return nil, fmt.Errorf("failed to create AMQP client: %w", err)
	}

	return client, nil
}

func (c *Client) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	config := amqp.Config{Properties: amqp.NewConnectionProperties()}
	config.Properties.SetClientConnectionName(c.name)

	conn, err := amqp.DialConfig(c.url, config)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch
	c.closed = conn.NotifyClose(make(chan *amqp.Error, 1))

	log.WithField("connection", c.name).Info("AMQP client connected successfully")
	return nil
}

// NotifyClosed is closed, after delivering the cause if any, once the connection goes away.
func (c *Client) NotifyClosed() <-chan *amqp.Error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *Client) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// OpenChannel opens a dedicated channel. The caller closes it.
func (c *Client) OpenChannel() (*amqp.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.channel != nil && !c.channel.IsClosed() {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}

	if c.conn != nil && !c.conn.IsClosed() {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.WithField("connection", c.name).Info("AMQP client closed successfully")
	return nil
}
