package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/app"
	"github.com/shaladi/reuse/internal/config"
	"github.com/shaladi/reuse/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.SetupLogging()

	ctx := context.Background()
	container, err := app.NewContainer(ctx, cfg, "reuse-ingestion")
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer container.Close()

	httpServer := server.NewHTTPServer(container.IngestionService, container.Storage)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start(cfg.HTTPAddr)
	}()

	log.Info("Ingestion service started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
	case err := <-serverErr:
		if err != nil {
			log.Errorf("HTTP server stopped: %v", err)
		}
	}

	log.Info("Shutting down ingestion service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
