package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/metrics"
)

type Options struct {
	ThreadDeathTimeout time.Duration
	AppHeader          string
}

type IngestionService struct {
	storage        port.ThreadStorage
	notifierClient port.NotifierClient
	geocoder       port.Geocoder
	classifier     *Classifier
	extractor      *LocationExtractor
	validate       *validator.Validate
	now            func() time.Time
}

func NewIngestionService(
	storage port.ThreadStorage,
	notifierClient port.NotifierClient,
	geocoder port.Geocoder,
	tagger port.Tagger,
	opts Options,
) *IngestionService {
	resolver := NewThreadResolver(storage, opts.ThreadDeathTimeout)
	return &IngestionService{
		storage:        storage,
		notifierClient: notifierClient,
		geocoder:       geocoder,
		classifier:     NewClassifier(resolver, opts.AppHeader),
		extractor:      NewLocationExtractor(tagger),
		validate:       validator.New(),
		now:            time.Now,
	}
}

// Ingest classifies one email and applies the resulting outcome.
// Only persistence failures are returned as errors.
func (i *IngestionService) Ingest(ctx context.Context, email domain.RawEmail) (*domain.Outcome, error) {
	start := time.Now()

	if err := i.validate.Struct(email); err != nil {
		log.WithError(fmt.Errorf("%w: %w", domain.ErrMalformedEmail, err)).
			WithField("sender", email.Sender).Warn("Rejecting malformed email")
		outcome := domain.Ignore(email, domain.IgnoreMalformed)
		record(outcome, start)
		return outcome, nil
	}

	outcome, err := i.classifier.Classify(ctx, email)
	if err != nil {
		metrics.IngestFailures.Inc()
		return nil, fmt.Errorf("failed to classify email: %w", err)
	}

	if err := i.apply(ctx, outcome.Effective()); err != nil {
		metrics.IngestFailures.Inc()
		return nil, err
	}

	log.WithFields(log.Fields{
		"sender":    email.Sender,
		"subject":   email.Subject,
		"outcome":   outcome.Kind.String(),
		"reason":    outcome.Reason,
		"effective": outcome.Effective().Kind.String(),
	}).Info("Email ingested")

	record(outcome, start)
	return outcome, nil
}

func (i *IngestionService) apply(ctx context.Context, outcome *domain.Outcome) error {
	switch outcome.Kind {
	case domain.OutcomeNewPost:
		return i.handleNewPost(ctx, outcome)
	case domain.OutcomeClaim:
		return i.handleClaim(ctx, outcome)
	case domain.OutcomeUpdate:
		return i.handleUpdate(ctx, outcome)
	}
	return nil
}

func (i *IngestionService) handleNewPost(ctx context.Context, outcome *domain.Outcome) error {
	email := outcome.Email
	location, coordinates := i.locate(ctx, email)
	now := i.now()

	thread := outcome.Thread
	createThread := thread == nil
	if createThread {
		thread = &domain.Thread{ID: uuid.New(), Subject: email.Subject}
	}
	thread.Touch(now)

	post := &domain.PostedEmail{
		ID:         uuid.New(),
		ThreadID:   thread.ID,
		Sender:     email.Sender,
		Subject:    email.Subject,
		Text:       email.Text,
		Location:   location,
		ReceivedAt: now,
		ModifiedAt: now,
	}

	item := domain.Item{
		ID:          uuid.New(),
		ThreadID:    thread.ID,
		PostEmailID: post.ID,
		Name:        DisplayName(email.Subject),
		Sender:      email.Sender,
		Description: email.Text,
		Location:    location,
		Coordinates: coordinates,
		IsFromEmail: true,
		ModifiedAt:  now,
	}

	err := i.storage.WithinTx(ctx, func(ctx context.Context) error {
		if createThread {
			if err := i.storage.CreateThread(ctx, thread); err != nil {
				return fmt.Errorf("failed to create thread: %w", err)
			}
		}
		if err := i.storage.CreatePostedEmail(ctx, post); err != nil {
			return fmt.Errorf("failed to create posted email: %w", err)
		}
		if err := i.storage.CreateItem(ctx, &item); err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		if !createThread {
			if err := i.storage.SaveThread(ctx, thread); err != nil {
				return fmt.Errorf("failed to save thread: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	outcome.Thread = thread
	outcome.Items = []domain.Item{item}
	i.notify(ctx, outcome)
	return nil
}

func (i *IngestionService) handleClaim(ctx context.Context, outcome *domain.Outcome) error {
	email := outcome.Email
	var (
		thread *domain.Thread
		items  []domain.Item
	)

	err := i.storage.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		thread, err = i.storage.LockThread(ctx, outcome.Thread.ID)
		if err != nil {
			return fmt.Errorf("failed to lock thread: %w", err)
		}
		items, err = i.storage.ItemsOfThread(ctx, thread.ID)
		if err != nil {
			return fmt.Errorf("failed to load thread items: %w", err)
		}

		now := i.now()
		ids := make([]uuid.UUID, 0, len(items))
		for idx := range items {
			items[idx].Close(email.Sender, now)
			if err := i.storage.SaveItem(ctx, &items[idx]); err != nil {
				return fmt.Errorf("failed to save item: %w", err)
			}
			ids = append(ids, items[idx].ID)
		}

		claim := &domain.ClaimEmail{
			ID:         uuid.New(),
			ThreadID:   thread.ID,
			Sender:     email.Sender,
			Subject:    email.Subject,
			Text:       email.Text,
			ItemIDs:    ids,
			ReceivedAt: now,
			ModifiedAt: now,
		}
		if err := i.storage.CreateClaimEmail(ctx, claim); err != nil {
			return fmt.Errorf("failed to create claim email: %w", err)
		}

		thread.Touch(now)
		if err := i.storage.SaveThread(ctx, thread); err != nil {
			return fmt.Errorf("failed to save thread: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	outcome.Thread = thread
	outcome.Items = items
	i.notify(ctx, outcome)
	return nil
}

func (i *IngestionService) handleUpdate(ctx context.Context, outcome *domain.Outcome) error {
	email := outcome.Email
	var (
		thread *domain.Thread
		items  []domain.Item
	)

	err := i.storage.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		thread, err = i.storage.LockThread(ctx, outcome.Thread.ID)
		if err != nil {
			return fmt.Errorf("failed to lock thread: %w", err)
		}
		items, err = i.storage.ItemsOfThread(ctx, thread.ID)
		if err != nil {
			return fmt.Errorf("failed to load thread items: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		now := i.now()
		for idx := range items {
			items[idx].AppendUpdate(email.Sender, email.Text, now)
			if err := i.storage.SaveItem(ctx, &items[idx]); err != nil {
				return fmt.Errorf("failed to save item: %w", err)
			}
		}

		thread.Touch(now)
		if err := i.storage.SaveThread(ctx, thread); err != nil {
			return fmt.Errorf("failed to save thread: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	outcome.Thread = thread
	outcome.Items = items
	return nil
}

// locate extracts a location from subject and body and geocodes the chosen one.
// Geocoder failures only cost the coordinates.
func (i *IngestionService) locate(ctx context.Context, email domain.RawEmail) (string, *domain.Coordinates) {
	fromSubject := i.extractor.Extract(ctx, email.Subject)
	fromBody := i.extractor.Extract(ctx, email.Text)

	lookups := make(map[string]*domain.Coordinates, 2)
	lookup := func(location string) *domain.Coordinates {
		if location == "" {
			return nil
		}
		if c, ok := lookups[location]; ok {
			return c
		}
		c, err := i.geocoder.Lookup(ctx, location)
		if err != nil {
			log.WithError(err).WithField("location", location).Warn("Geocoder lookup failed")
			c = nil
		}
		lookups[location] = c
		return c
	}

	location := ChooseLocation(fromSubject, fromBody, func(l string) bool { return lookup(l) != nil })
	if location == "" {
		return domain.LocationUndetermined, nil
	}
	return location, lookup(location)
}

// ChooseLocation decides between the location found in the subject and the one found in the body.
// A dashed, geocodable subject location wins; so does a geocodable subject location when the
// body location is not geocodable. Otherwise the body location is used.
func ChooseLocation(fromSubject, fromBody string, geocodable func(string) bool) string {
	switch {
	case fromSubject != "" && geocodable(fromSubject) && strings.Contains(fromSubject, "-"):
		return fromSubject
	case fromSubject != "" && fromBody != "" && geocodable(fromSubject) && !geocodable(fromBody):
		return fromSubject
	}
	return fromBody
}

func (i *IngestionService) notify(ctx context.Context, outcome *domain.Outcome) {
	msg := &domain.ItemsUpdatedMessage{
		EventID:   uuid.New(),
		Outcome:   outcome.Kind.String(),
		ThreadID:  outcome.Thread.ID,
		ItemIDs:   extractItemIDs(outcome.Items),
		UpdatedAt: i.now(),
	}
	if err := i.notifierClient.NotifyItemsUpdated(ctx, msg); err != nil {
		metrics.NotificationFailures.Inc()
		log.WithError(err).WithField("threadID", outcome.Thread.ID).Error("Failed to notify subscribers")
	}
}

// DisplayName upper-cases the first letter of every word of the subject.
func DisplayName(subject string) string {
	words := strings.Fields(subject)
	for idx, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[idx] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func extractItemIDs(items []domain.Item) uuid.UUIDs {
	ids := make(uuid.UUIDs, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func record(outcome *domain.Outcome, start time.Time) {
	kind := outcome.Kind.String()
	metrics.EmailsIngested.WithLabelValues(kind, string(outcome.Reason)).Inc()
	metrics.IngestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
