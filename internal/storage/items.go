package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shaladi/reuse/internal/core/domain"
)

const itemColumns = `id, thread_id, post_email_id, name, sender, description, location,
	latitude, longitude, claimed, is_from_email, modified_at`

func (s *ThreadsStorage) CreateItem(ctx context.Context, item *domain.Item) error {
	lat, lon := coordinateColumns(item.Coordinates)
	_, err := s.conn(ctx).Exec(ctx,
		`INSERT INTO items (`+itemColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID,
		item.ThreadID,
		uuid.NullUUID{UUID: item.PostEmailID, Valid: item.PostEmailID != uuid.Nil},
		item.Name,
		item.Sender,
		item.Description,
		item.Location,
		lat,
		lon,
		item.Claimed,
		item.IsFromEmail,
		item.ModifiedAt,
	)
	return err
}

// SaveItem writes the mutable fields of an item. claimed is never reset to false.
func (s *ThreadsStorage) SaveItem(ctx context.Context, item *domain.Item) error {
	lat, lon := coordinateColumns(item.Coordinates)
	_, err := s.conn(ctx).Exec(ctx,
		`UPDATE items
		 SET name = $2,
		     description = $3,
		     location = $4,
		     latitude = $5,
		     longitude = $6,
		     claimed = claimed OR $7,
		     modified_at = $8
		 WHERE id = $1`,
		item.ID,
		item.Name,
		item.Description,
		item.Location,
		lat,
		lon,
		item.Claimed,
		item.ModifiedAt,
	)
	return err
}

func (s *ThreadsStorage) ItemsOfThread(ctx context.Context, threadID uuid.UUID) ([]domain.Item, error) {
	rows, err := s.conn(ctx).Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE thread_id = $1 ORDER BY modified_at, id`,
		threadID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanItem)
}

// ItemsModifiedSince returns items modified at or after the given instant, oldest first.
func (s *ThreadsStorage) ItemsModifiedSince(ctx context.Context, after time.Time) ([]domain.Item, error) {
	rows, err := s.conn(ctx).Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE modified_at >= $1 ORDER BY modified_at, id`,
		after,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanItem)
}

func scanItem(row pgx.CollectableRow) (domain.Item, error) {
	var (
		item     domain.Item
		postID   uuid.NullUUID
		lat, lon *float64
	)
	err := row.Scan(
		&item.ID,
		&item.ThreadID,
		&postID,
		&item.Name,
		&item.Sender,
		&item.Description,
		&item.Location,
		&lat,
		&lon,
		&item.Claimed,
		&item.IsFromEmail,
		&item.ModifiedAt,
	)
	if err != nil {
		return domain.Item{}, err
	}

	item.PostEmailID = postID.UUID
	if lat != nil && lon != nil {
		item.Coordinates = &domain.Coordinates{Latitude: *lat, Longitude: *lon}
	}
	return item, nil
}

func coordinateColumns(c *domain.Coordinates) (*float64, *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Latitude, &c.Longitude
}
