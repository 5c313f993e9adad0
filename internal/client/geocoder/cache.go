package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/metrics"
)

const (
	cacheKeyPrefix = "reuse:geocode:"
	// unknownLocation is cached for locations the geocoder does not know.
	unknownLocation = "-"
)

// Cache keeps geocoder answers in Redis, including negative ones.
// Redis errors never fail a lookup; the wrapped geocoder is asked instead.
type Cache struct {
	next   port.Geocoder
	client redis.UniversalClient
	ttl    time.Duration
}

func NewCache(next port.Geocoder, client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) Lookup(ctx context.Context, location string) (*domain.Coordinates, error) {
	key := cacheKeyPrefix + location

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		metrics.GeocoderLookups.WithLabelValues("cache", "hit").Inc()
		return decodeCached(cached)
	case !errors.Is(err, redis.Nil):
		log.WithError(err).WithField("location", location).Warn("Geocoder cache read failed")
	}
	metrics.GeocoderLookups.WithLabelValues("cache", "miss").Inc()

	coords, err := c.next.Lookup(ctx, location)
	if err != nil {
		return nil, err
	}

	value := unknownLocation
	if coords != nil {
		encoded, err := json.Marshal(coords)
		if err != nil {
			return coords, nil
		}
		value = string(encoded)
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.WithError(err).WithField("location", location).Warn("Geocoder cache write failed")
	}
	return coords, nil
}

func decodeCached(value string) (*domain.Coordinates, error) {
	if value == unknownLocation {
		return nil, nil
	}
	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(value), &coords); err != nil {
		return nil, err
	}
	return &coords, nil
}
