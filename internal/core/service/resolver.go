package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/core/similarity"
)

const (
	DefaultThreadDeathTimeout = 7 * 24 * time.Hour

	markedThreshold   = 0.9
	unmarkedThreshold = 0.6
)

var replyMarker = regexp.MustCompile(`(?i)^\s*(?:\[(?:re|fwd?):?\]:?|(?:re|fwd?):)`)

// ThreadResolver finds the open thread an email most likely belongs to.
type ThreadResolver struct {
	storage      port.ThreadStorage
	deathTimeout time.Duration
	now          func() time.Time
}

func NewThreadResolver(storage port.ThreadStorage, deathTimeout time.Duration) *ThreadResolver {
	if deathTimeout <= 0 {
		deathTimeout = DefaultThreadDeathTimeout
	}
	return &ThreadResolver{
		storage:      storage,
		deathTimeout: deathTimeout,
		now:          time.Now,
	}
}

// Resolve returns the best matching thread, or nil when the email starts a new one.
func (r *ThreadResolver) Resolve(ctx context.Context, email domain.RawEmail) (*domain.Thread, error) {
	subject, hadMarker := StripReplyMarker(email.Subject)
	words := strings.Fields(subject)
	if len(words) == 0 {
		return nil, nil
	}

	cutoff := r.now().Add(-r.deathTimeout)
	candidates, err := r.storage.FindThreadsBySubjectWords(ctx, distinct(words), cutoff)
	if err != nil {
		return nil, err
	}

	var (
		best      *domain.Thread
		bestScore float64
	)
	for i := range candidates {
		if !candidates[i].ModifiedAfter(cutoff) {
			continue
		}
		score := similarity.Score(words, strings.Fields(candidates[i].Subject))
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}

	threshold := unmarkedThreshold
	if hadMarker {
		threshold = markedThreshold
	}

	log.WithFields(log.Fields{
		"subject":    email.Subject,
		"candidates": len(candidates),
		"bestScore":  bestScore,
		"threshold":  threshold,
	}).Debug("Resolved thread candidates")

	if best == nil || bestScore <= threshold {
		return nil, nil
	}
	return best, nil
}

// StripReplyMarker removes one leading Re:/Fw: marker (optionally bracketed) and trims the rest.
func StripReplyMarker(subject string) (string, bool) {
	loc := replyMarker.FindStringIndex(subject)
	if loc == nil {
		return strings.TrimSpace(subject), false
	}
	return strings.TrimSpace(subject[loc[1]:]), true
}

func distinct(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
