package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReuseExchange = "reuse"
	InboundQueue  = "reuse.inbound"

	RoutingKeyEmailReceived = "email.received"
	RoutingKeyItemsUpdated  = "items.updated"
)

// InboundEmailMessage is the queue envelope of an email waiting for ingestion.
type InboundEmailMessage struct {
	MessageID  uuid.UUID `json:"message_id" validate:"required"`
	Email      RawEmail  `json:"email" validate:"required"`
	ReceivedAt time.Time `json:"received_at" validate:"required"`
}

// ItemsUpdatedMessage tells subscribers to refresh their item lists.
type ItemsUpdatedMessage struct {
	EventID   uuid.UUID  `json:"event_id"`
	Outcome   string     `json:"outcome"`
	ThreadID  uuid.UUID  `json:"thread_id"`
	ItemIDs   uuid.UUIDs `json:"item_ids"`
	UpdatedAt time.Time  `json:"updated_at"`
}
