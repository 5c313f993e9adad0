package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shaladi/reuse/internal/core/domain"
)

type ThreadsStorage struct {
	*PostgresDB
}

func NewThreadsStorage(db *PostgresDB) *ThreadsStorage {
	return &ThreadsStorage{
		PostgresDB: db,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindThreadsBySubjectWords returns the threads modified after modifiedAfter whose
// subject contains at least one of the words. Matching is case-sensitive.
func (s *ThreadsStorage) FindThreadsBySubjectWords(ctx context.Context, words []string, modifiedAfter time.Time) ([]domain.Thread, error) {
	if len(words) == 0 {
		return nil, nil
	}

	patterns := make([]string, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, "%"+likeEscaper.Replace(w)+"%")
	}

	rows, err := s.conn(ctx).Query(ctx,
		`SELECT id, subject, correlation_token, last_modified
		 FROM threads
		 WHERE last_modified > $1 AND subject LIKE ANY($2)`,
		modifiedAfter,
		patterns,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.ID, &thread.Subject, &thread.CorrelationToken, &thread.LastModified); err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}

	return threads, rows.Err()
}

func (s *ThreadsStorage) CreateThread(ctx context.Context, thread *domain.Thread) error {
	_, err := s.conn(ctx).Exec(ctx,
		`INSERT INTO threads (id, subject, correlation_token, last_modified)
		 VALUES ($1, $2, $3, $4)`,
		thread.ID,
		thread.Subject,
		thread.CorrelationToken,
		thread.LastModified,
	)
	return err
}

// SaveThread never moves last_modified backwards, even when a stale copy is saved.
func (s *ThreadsStorage) SaveThread(ctx context.Context, thread *domain.Thread) error {
	tag, err := s.conn(ctx).Exec(ctx,
		`UPDATE threads
		 SET subject = $2,
		     correlation_token = $3,
		     last_modified = GREATEST(last_modified, $4)
		 WHERE id = $1`,
		thread.ID,
		thread.Subject,
		thread.CorrelationToken,
		thread.LastModified,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrThreadNotFound, thread.ID)
	}
	return nil
}

// LockThread loads a thread and holds a row lock on it until the surrounding transaction ends.
func (s *ThreadsStorage) LockThread(ctx context.Context, threadID uuid.UUID) (*domain.Thread, error) {
	var thread domain.Thread
	err := s.conn(ctx).QueryRow(ctx,
		`SELECT id, subject, correlation_token, last_modified
		 FROM threads
		 WHERE id = $1
		 FOR UPDATE`,
		threadID,
	).Scan(&thread.ID, &thread.Subject, &thread.CorrelationToken, &thread.LastModified)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrThreadNotFound, threadID)
	}
	if err != nil {
		return nil, err
	}

	return &thread, nil
}

func (s *ThreadsStorage) CreatePostedEmail(ctx context.Context, email *domain.PostedEmail) error {
	_, err := s.conn(ctx).Exec(ctx,
		`INSERT INTO posted_emails (id, thread_id, sender, subject, text, location, received_at, modified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		email.ID,
		email.ThreadID,
		email.Sender,
		email.Subject,
		email.Text,
		email.Location,
		email.ReceivedAt,
		email.ModifiedAt,
	)
	return err
}

func (s *ThreadsStorage) CreateClaimEmail(ctx context.Context, email *domain.ClaimEmail) error {
	return s.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.conn(ctx).Exec(ctx,
			`INSERT INTO claim_emails (id, thread_id, sender, subject, text, received_at, modified_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			email.ID,
			email.ThreadID,
			email.Sender,
			email.Subject,
			email.Text,
			email.ReceivedAt,
			email.ModifiedAt,
		)
		if err != nil {
			return err
		}

		if len(email.ItemIDs) == 0 {
			return nil
		}
		_, err = s.conn(ctx).Exec(ctx,
			`INSERT INTO claim_email_items (claim_email_id, item_id)
			 SELECT $1, unnest($2::uuid[])`,
			email.ID,
			email.ItemIDs,
		)
		return err
	})
}

// ClaimedItemIDs returns the items linked to a claim email.
func (s *ThreadsStorage) ClaimedItemIDs(ctx context.Context, claimEmailID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.conn(ctx).Query(ctx,
		`SELECT item_id FROM claim_email_items WHERE claim_email_id = $1 ORDER BY item_id`,
		claimEmailID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}
