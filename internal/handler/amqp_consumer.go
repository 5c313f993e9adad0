package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/metrics"
)

const ingestTimeout = time.Minute

type ingestionJob struct {
	message  domain.InboundEmailMessage
	delivery *amqp.Delivery
}

// AMQPConsumer feeds inbound queue messages to a pool of ingestion workers.
// Each delivery is acked once its email is ingested. Invalid messages are dropped to the
// dead-letter queue; a failed ingestion is requeued once, then dead-lettered.
type AMQPConsumer struct {
	ingestionService port.IngestionService
	validate         *validator.Validate
	jobQueue         chan ingestionJob
	wg               sync.WaitGroup
	numWorkers       int
}

func NewAMQPConsumer(
	ingestionService port.IngestionService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &AMQPConsumer{
		ingestionService: ingestionService,
		validate:         validate,
		jobQueue:         make(chan ingestionJob, queueSize),
		numWorkers:       numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d ingestion workers", c.numWorkers)
}

// Stop closes the job queue and waits for the workers to drain it, or for ctx to expire.
// Handle must not be called after Stop.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All ingestion workers stopped after drain")
	case <-ctx.Done():
		log.Warn("Ingestion workers did not drain before shutdown deadline")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[IngestWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Debugf("[IngestWorker %d] Queue closed, stopping", workerID)
				return
			}
			c.process(ctx, job)
		}
	}
}

func (c *AMQPConsumer) process(ctx context.Context, job ingestionJob) {
	jobCtx, cancel := context.WithTimeout(ctx, ingestTimeout)
	defer cancel()

	outcome, err := c.ingestionService.Ingest(jobCtx, job.message.Email)
	if err != nil {
		requeue := !job.delivery.Redelivered
		log.WithError(err).WithFields(log.Fields{
			"messageID": job.message.MessageID,
			"requeue":   requeue,
		}).Error("Ingestion failed")
		metrics.InboundMessages.WithLabelValues("failed").Inc()
		_ = job.delivery.Nack(false, requeue)
		return
	}

	log.WithFields(log.Fields{
		"messageID": job.message.MessageID,
		"outcome":   outcome.Effective().Kind.String(),
	}).Debug("Inbound email processed")
	metrics.InboundMessages.WithLabelValues("processed").Inc()
	_ = job.delivery.Ack(false)
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	if delivery.RoutingKey != domain.RoutingKeyEmailReceived {
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
		metrics.InboundMessages.WithLabelValues("rejected").Inc()
		_ = delivery.Nack(false, false)
		return
	}

	var message domain.InboundEmailMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.WithError(err).Error("Failed to unmarshal inbound email message")
		metrics.InboundMessages.WithLabelValues("rejected").Inc()
		_ = delivery.Nack(false, false)
		return
	}

	// Only the envelope is checked here; a malformed email is the engine's call.
	if err := c.validate.StructExcept(message, "Email"); err != nil {
		log.WithError(err).Error("Inbound email message validation failed")
		metrics.InboundMessages.WithLabelValues("rejected").Inc()
		_ = delivery.Nack(false, false)
		return
	}

	log.WithFields(log.Fields{
		"messageID":  message.MessageID,
		"sender":     message.Email.Sender,
		"receivedAt": message.ReceivedAt,
	}).Info("Received inbound email")

	// Blocks when the queue is full, which holds back further deliveries.
	select {
	case c.jobQueue <- ingestionJob{message: message, delivery: delivery}:
	case <-ctx.Done():
		_ = delivery.Nack(false, true)
	}
}
