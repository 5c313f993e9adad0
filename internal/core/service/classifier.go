package service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
)

// DefaultAppHeader marks mail sent by the reuse app itself.
const DefaultAppHeader = "X-Reuse-App"

var claimKeywords = []string{"claimed", "taken", "all gone", "gone"}

type threadResolver interface {
	Resolve(ctx context.Context, email domain.RawEmail) (*domain.Thread, error)
}

// Classifier decides whether an email is a new post, a claim, a thread update or noise.
// It performs no writes; the returned outcome is applied by IngestionService.
type Classifier struct {
	resolver  threadResolver
	appHeader string
}

func NewClassifier(resolver threadResolver, appHeader string) *Classifier {
	if appHeader == "" {
		appHeader = DefaultAppHeader
	}
	return &Classifier{
		resolver:  resolver,
		appHeader: appHeader,
	}
}

func (c *Classifier) Classify(ctx context.Context, email domain.RawEmail) (*domain.Outcome, error) {
	return c.classify(ctx, email, true)
}

func (c *Classifier) classify(ctx context.Context, email domain.RawEmail, allowRestrip bool) (*domain.Outcome, error) {
	if email.HasHeader(c.appHeader) {
		return domain.Ignore(email, domain.IgnoreOwnMessage), nil
	}

	claimed := HasClaimKeyword(email)
	reply := IsReply(email.Subject)

	thread, err := c.resolver.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	switch {
	case thread == nil && !reply && !claimed:
		return &domain.Outcome{Kind: domain.OutcomeNewPost, Email: email}, nil

	case thread == nil && reply && len(email.Subject) > 4:
		if !allowRestrip {
			return domain.Ignore(email, domain.IgnoreUnmatchedReply), nil
		}
		return c.restrip(ctx, email)

	case thread != nil && claimed:
		return &domain.Outcome{Kind: domain.OutcomeClaim, Email: email, Thread: thread}, nil

	case thread != nil:
		return &domain.Outcome{Kind: domain.OutcomeUpdate, Email: email, Thread: thread}, nil
	}

	return domain.Ignore(email, domain.IgnoreUnmatched), nil
}

// restrip retries a reply whose thread was not found with its "Re:" prefix removed,
// so the unmarked threshold applies.
func (c *Classifier) restrip(ctx context.Context, email domain.RawEmail) (*domain.Outcome, error) {
	stripped := email.WithSubject(strings.TrimSpace(email.Subject[3:]))

	thread, err := c.resolver.Resolve(ctx, stripped)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		log.WithFields(log.Fields{
			"sender":  email.Sender,
			"subject": email.Subject,
		}).Info("Dropping reply without a matching thread")
		return domain.Ignore(email, domain.IgnoreUnmatchedReply), nil
	}

	sub, err := c.classify(ctx, stripped, false)
	if err != nil {
		return nil, err
	}

	outcome := domain.Ignore(email, domain.IgnoreDelegated)
	outcome.Delegated = sub
	return outcome, nil
}

// HasClaimKeyword reports whether subject or text announce that items are gone.
func HasClaimKeyword(email domain.RawEmail) bool {
	subject := strings.ToLower(email.Subject)
	text := strings.ToLower(email.Text)
	for _, kw := range claimKeywords {
		if strings.Contains(subject, kw) || strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func IsReply(subject string) bool {
	return len(subject) >= 3 && strings.EqualFold(subject[:3], "re:")
}
