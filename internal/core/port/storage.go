package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shaladi/reuse/internal/core/domain"
)

// ThreadStorage persists threads, items and the emails attached to them.
// Writes issued from the function passed to WithinTx commit or roll back together.
type ThreadStorage interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	FindThreadsBySubjectWords(ctx context.Context, words []string, modifiedAfter time.Time) ([]domain.Thread, error)
	CreateThread(ctx context.Context, thread *domain.Thread) error
	SaveThread(ctx context.Context, thread *domain.Thread) error
	LockThread(ctx context.Context, threadID uuid.UUID) (*domain.Thread, error)

	CreateItem(ctx context.Context, item *domain.Item) error
	SaveItem(ctx context.Context, item *domain.Item) error
	ItemsOfThread(ctx context.Context, threadID uuid.UUID) ([]domain.Item, error)

	CreatePostedEmail(ctx context.Context, email *domain.PostedEmail) error
	CreateClaimEmail(ctx context.Context, email *domain.ClaimEmail) error
}

type ItemsStorage interface {
	ItemsModifiedSince(ctx context.Context, after time.Time) ([]domain.Item, error)
}
