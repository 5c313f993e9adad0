package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/mocks"
)

type ackResult struct {
	acked   bool
	requeue bool
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	results []ackResult
	done    chan struct{}
}

func newFakeAcknowledger() *fakeAcknowledger {
	return &fakeAcknowledger{done: make(chan struct{}, 16)}
}

func (a *fakeAcknowledger) record(r ackResult) error {
	a.mu.Lock()
	a.results = append(a.results, r)
	a.mu.Unlock()
	a.done <- struct{}{}
	return nil
}

func (a *fakeAcknowledger) Ack(uint64, bool) error { return a.record(ackResult{acked: true}) }
func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	return a.record(ackResult{requeue: requeue})
}
func (a *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	return a.record(ackResult{requeue: requeue})
}

func (a *fakeAcknowledger) wait(t *testing.T) ackResult {
	t.Helper()
	select {
	case <-a.done:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery was never acknowledged")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.results[len(a.results)-1]
}

func inboundDelivery(t *testing.T, ack amqp.Acknowledger, msg any, redelivered bool) *amqp.Delivery {
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return &amqp.Delivery{
		Acknowledger: ack,
		RoutingKey:   domain.RoutingKeyEmailReceived,
		Body:         body,
		Redelivered:  redelivered,
	}
}

func validMessage() domain.InboundEmailMessage {
	return domain.InboundEmailMessage{
		MessageID:  uuid.New(),
		Email:      domain.RawEmail{Sender: "alice@example.com", Subject: "Chair", Text: "free"},
		ReceivedAt: time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC),
	}
}

func startConsumer(t *testing.T, service *mocks.IngestionService) *AMQPConsumer {
	ctx, cancel := context.WithCancel(context.Background())
	consumer := NewAMQPConsumer(service, validator.New(), 2, 4)
	consumer.Start(ctx)
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		consumer.Stop(stopCtx)
		cancel()
	})
	return consumer
}

func TestAMQPConsumer_AcksIngestedEmail(t *testing.T) {
	service := mocks.NewIngestionService(t)
	msg := validMessage()
	service.EXPECT().Ingest(mock.Anything, msg.Email).
		Return(&domain.Outcome{Kind: domain.OutcomeNewPost, Email: msg.Email}, nil).Once()
	consumer := startConsumer(t, service)
	ack := newFakeAcknowledger()

	consumer.Handle(context.Background(), inboundDelivery(t, ack, msg, false))

	assert.Equal(t, ackResult{acked: true}, ack.wait(t))
}

func TestAMQPConsumer_IgnoredEmailIsAcked(t *testing.T) {
	service := mocks.NewIngestionService(t)
	msg := validMessage()
	msg.Email.Text = ""
	service.EXPECT().Ingest(mock.Anything, msg.Email).
		Return(domain.Ignore(msg.Email, domain.IgnoreMalformed), nil).Once()
	consumer := startConsumer(t, service)
	ack := newFakeAcknowledger()

	consumer.Handle(context.Background(), inboundDelivery(t, ack, msg, false))

	assert.Equal(t, ackResult{acked: true}, ack.wait(t))
}

func TestAMQPConsumer_FailureIsRequeuedOnce(t *testing.T) {
	service := mocks.NewIngestionService(t)
	msg := validMessage()
	service.EXPECT().Ingest(mock.Anything, msg.Email).Return(nil, errors.New("db down")).Twice()
	consumer := startConsumer(t, service)
	ack := newFakeAcknowledger()

	consumer.Handle(context.Background(), inboundDelivery(t, ack, msg, false))
	assert.Equal(t, ackResult{requeue: true}, ack.wait(t))

	consumer.Handle(context.Background(), inboundDelivery(t, ack, msg, true))
	assert.Equal(t, ackResult{requeue: false}, ack.wait(t))
}

func TestAMQPConsumer_RejectsInvalidMessages(t *testing.T) {
	service := mocks.NewIngestionService(t)
	consumer := startConsumer(t, service)

	tests := []struct {
		name     string
		delivery func(ack amqp.Acknowledger) *amqp.Delivery
	}{
		{
			name: "not json",
			delivery: func(ack amqp.Acknowledger) *amqp.Delivery {
				return &amqp.Delivery{Acknowledger: ack, RoutingKey: domain.RoutingKeyEmailReceived, Body: []byte("{")}
			},
		},
		{
			name: "missing message id",
			delivery: func(ack amqp.Acknowledger) *amqp.Delivery {
				msg := validMessage()
				msg.MessageID = uuid.Nil
				return inboundDelivery(t, ack, msg, false)
			},
		},
		{
			name: "unknown routing key",
			delivery: func(ack amqp.Acknowledger) *amqp.Delivery {
				d := inboundDelivery(t, ack, validMessage(), false)
				d.RoutingKey = "items.updated"
				return d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := newFakeAcknowledger()
			consumer.Handle(context.Background(), tt.delivery(ack))
			assert.Equal(t, ackResult{requeue: false}, ack.wait(t))
		})
	}
}
