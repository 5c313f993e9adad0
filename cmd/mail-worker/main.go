package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/app"
	"github.com/shaladi/reuse/internal/config"
	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/handler"
	"github.com/shaladi/reuse/internal/infrastructure/amqp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.SetupLogging()

	container, err := app.NewContainer(context.Background(), cfg, "reuse-mail-worker")
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer container.Close()

	messageHandler := handler.NewAMQPConsumer(
		container.IngestionService,
		validator.New(),
		cfg.WorkerCount,
		cfg.WorkerQueueSize,
	)

	// Workers outlive the consumer so in-flight jobs can finish on shutdown.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	messageHandler.Start(workerCtx)

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	consumer := amqp.NewConsumer(container.AMQPClient, messageHandler, cfg.WorkerCount+cfg.WorkerQueueSize)
	if err := consumer.Consume(consumerCtx, domain.InboundQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Mail worker started successfully")
	log.Infof("Consuming messages from queue: %s", domain.InboundQueue)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
	case amqpErr := <-container.AMQPClient.NotifyClosed():
		log.Errorf("AMQP connection lost: %v", amqpErr)
	}

	log.Info("Shutting down mail worker...")
	consumerCancel()
	<-consumer.Done()

	drainCtx, drainCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer drainCancel()
	messageHandler.Stop(drainCtx)

	if err := consumer.Close(); err != nil {
		log.Warnf("Failed to close consumer channel: %v", err)
	}
}
