// Package app wires the configured adapters into the ingestion engine.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/client"
	"github.com/shaladi/reuse/internal/client/geocoder"
	"github.com/shaladi/reuse/internal/client/tagger"
	"github.com/shaladi/reuse/internal/config"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/core/service"
	"github.com/shaladi/reuse/internal/infrastructure/amqp"
	"github.com/shaladi/reuse/internal/storage"
)

type Container struct {
	Config *config.Config

	DB          *storage.PostgresDB
	Storage     *storage.ThreadsStorage
	AMQPClient  *amqp.Client
	Publisher   *amqp.Publisher
	RedisClient *redis.Client

	Geocoder         port.Geocoder
	IngestionService *service.IngestionService
}

// NewContainer connects to Postgres and RabbitMQ and builds the ingestion service.
// connectionName identifies the process on the broker.
func NewContainer(ctx context.Context, cfg *config.Config, connectionName string) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	log.Info("Connected to database")

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			c.Close()
			return nil, err
		}
	}
	c.Storage = storage.NewThreadsStorage(db)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, connectionName)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.AMQPClient = amqpClient

	if err := amqp.NewTopologyManager(amqpClient).Setup(); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to setup AMQP topology: %w", err)
	}
	c.Publisher = amqp.NewPublisher(amqpClient)

	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("Redis not available, geocoder answers will not be cached")
			_ = redisClient.Close()
		} else {
			c.RedisClient = redisClient
			log.Info("Connected to Redis")
		}
	}

	c.Geocoder, err = NewGeocoder(cfg, c.RedisClient)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.IngestionService = service.NewIngestionService(
		c.Storage,
		client.NewAMQPNotifier(c.Publisher),
		c.Geocoder,
		tagger.NewProseTagger(),
		service.Options{
			ThreadDeathTimeout: cfg.ThreadDeathTimeout,
			AppHeader:          cfg.AppHeader,
		},
	)

	return c, nil
}

// NewGeocoder builds the geocoder chain: the building directory first, then the remote
// geocoder behind its cache and retry guard. With neither configured nothing is ever found.
func NewGeocoder(cfg *config.Config, redisClient *redis.Client) (port.Geocoder, error) {
	var chain geocoder.Chain

	if cfg.GeocoderDirectoryFile != "" {
		dir, err := geocoder.LoadDirectory(cfg.GeocoderDirectoryFile)
		if err != nil {
			return nil, err
		}
		chain = append(chain, dir)
	}

	if cfg.GeocoderURL != "" {
		var remote port.Geocoder = geocoder.NewResilient(
			geocoder.NewHTTPGeocoder(cfg.GeocoderURL, cfg.GeocoderAttemptTimeout),
			geocoder.ResilienceConfig{
				Name:           "http",
				MaxAttempts:    cfg.GeocoderMaxAttempts,
				AttemptTimeout: cfg.GeocoderAttemptTimeout,
				Backoff:        200 * time.Millisecond,
			},
		)
		if redisClient != nil {
			remote = geocoder.NewCache(remote, redisClient, cfg.GeocoderCacheTTL)
		}
		chain = append(chain, remote)
	}

	switch len(chain) {
	case 0:
		log.Warn("No geocoder configured, items will have no coordinates")
		return geocoder.None{}, nil
	case 1:
		return chain[0], nil
	}
	return chain, nil
}

func Migrate(db *storage.PostgresDB) error {
	migrator, err := db.Migrator()
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		return err
	}
	version, _, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.WithField("version", version).Info("Database schema up to date")
	return nil
}

func (c *Container) Close() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis client")
		}
	}
	if c.AMQPClient != nil {
		if err := c.AMQPClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close AMQP client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
