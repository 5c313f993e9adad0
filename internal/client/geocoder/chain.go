package geocoder

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
)

// Chain asks each geocoder in turn and returns the first coordinates found.
// An error is returned only when no geocoder answered and the last one failed.
type Chain []port.Geocoder

func (c Chain) Lookup(ctx context.Context, location string) (*domain.Coordinates, error) {
	var lastErr error
	for _, g := range c {
		coords, err := g.Lookup(ctx, location)
		if err != nil {
			log.WithError(err).WithField("location", location).Debug("Geocoder in chain failed")
			lastErr = err
			continue
		}
		if coords != nil {
			return coords, nil
		}
		lastErr = nil
	}
	return nil, lastErr
}

// None never finds anything. It stands in when no geocoder is configured.
type None struct{}

func (None) Lookup(context.Context, string) (*domain.Coordinates, error) {
	return nil, nil
}
