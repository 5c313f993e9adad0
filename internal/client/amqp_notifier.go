package client

import (
	"context"

	"github.com/shaladi/reuse/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier fans item changes out to subscribers over the reuse exchange.
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyItemsUpdated(ctx context.Context, message *domain.ItemsUpdatedMessage) error {
	return n.publisher.Publish(ctx, domain.ReuseExchange, domain.RoutingKeyItemsUpdated, message)
}
