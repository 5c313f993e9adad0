package port

import (
	"context"

	"github.com/shaladi/reuse/internal/core/domain"
)

type IngestionService interface {
	Ingest(ctx context.Context, email domain.RawEmail) (*domain.Outcome, error)
}
