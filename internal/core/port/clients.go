package port

import (
	"context"

	"github.com/shaladi/reuse/internal/core/domain"
)

type NotifierClient interface {
	NotifyItemsUpdated(ctx context.Context, message *domain.ItemsUpdatedMessage) error
}

// Tagger splits text into sentences and words and tags every word.
type Tagger interface {
	Tag(ctx context.Context, text string) ([][]domain.TaggedWord, error)
}

// Geocoder resolves a location string. A nil result with a nil error means unknown location.
type Geocoder interface {
	Lookup(ctx context.Context, location string) (*domain.Coordinates, error)
}
