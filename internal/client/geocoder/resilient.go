package geocoder

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/metrics"
)

type ResilienceConfig struct {
	Name           string
	MaxAttempts    int
	AttemptTimeout time.Duration
	Backoff        time.Duration
	// FailureThreshold is the number of consecutive failed lookups that opens the circuit.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// Resilient bounds every lookup of the wrapped geocoder: each attempt has its own timeout,
// attempts are retried a fixed number of times, and a circuit breaker stops calling a
// geocoder that keeps failing.
type Resilient struct {
	next    port.Geocoder
	breaker *gobreaker.CircuitBreaker[*domain.Coordinates]
	config  ResilienceConfig
}

func NewResilient(next port.Geocoder, config ResilienceConfig) *Resilient {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5
	}
	if config.OpenTimeout == 0 {
		config.OpenTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    config.Name,
		Timeout: config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			}).Warn("Geocoder circuit breaker state changed")
			metrics.GeocoderCircuitState.WithLabelValues(name).Set(float64(to))
		},
	}

	return &Resilient{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*domain.Coordinates](settings),
		config:  config,
	}
}

func (r *Resilient) Lookup(ctx context.Context, location string) (*domain.Coordinates, error) {
	coords, err := r.breaker.Execute(func() (*domain.Coordinates, error) {
		return r.attempt(ctx, location)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.GeocoderLookups.WithLabelValues(r.config.Name, "circuit_open").Inc()
		return nil, err
	case err != nil:
		metrics.GeocoderLookups.WithLabelValues(r.config.Name, "error").Inc()
		return nil, err
	case coords == nil:
		metrics.GeocoderLookups.WithLabelValues(r.config.Name, "miss").Inc()
	default:
		metrics.GeocoderLookups.WithLabelValues(r.config.Name, "hit").Inc()
	}
	return coords, nil
}

func (r *Resilient) attempt(ctx context.Context, location string) (*domain.Coordinates, error) {
	var err error
	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		var coords *domain.Coordinates
		coords, err = r.lookupOnce(ctx, location)
		if err == nil {
			return coords, nil
		}

		log.WithError(err).WithFields(log.Fields{
			"location": location,
			"attempt":  attempt,
		}).Debug("Geocoder attempt failed")

		if attempt == r.config.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.config.Backoff * time.Duration(attempt)):
		}
	}
	return nil, err
}

func (r *Resilient) lookupOnce(ctx context.Context, location string) (*domain.Coordinates, error) {
	if r.config.AttemptTimeout <= 0 {
		return r.next.Lookup(ctx, location)
	}
	ctx, cancel := context.WithTimeout(ctx, r.config.AttemptTimeout)
	defer cancel()
	return r.next.Lookup(ctx, location)
}
