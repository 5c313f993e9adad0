package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaladi/reuse/internal/core/domain"
)

func newThread(subject string) *domain.Thread {
	modified := time.Now().Add(-time.Hour)
	return &domain.Thread{ID: uuid.New(), Subject: subject, LastModified: &modified}
}

func TestClassifier_Classify(t *testing.T) {
	chair := newThread("Free chair B-123")
	lamp := newThread("Old lamp")

	tests := []struct {
		name           string
		email          domain.RawEmail
		expectedKind   domain.OutcomeKind
		expectedReason domain.IgnoreReason
		expectedThread *domain.Thread
	}{
		{
			name:         "new post",
			email:        domain.RawEmail{Subject: "Couch in E-62", Text: "Comfy couch up for grabs"},
			expectedKind: domain.OutcomeNewPost,
		},
		{
			name:           "claim in subject",
			email:          domain.RawEmail{Subject: "Free chair B-123 claimed", Text: "Thanks!"},
			expectedKind:   domain.OutcomeClaim,
			expectedThread: chair,
		},
		{
			name:           "claim in body",
			email:          domain.RawEmail{Subject: "Re: Free chair B-123", Text: "All GONE, thanks everyone"},
			expectedKind:   domain.OutcomeClaim,
			expectedThread: chair,
		},
		{
			name:           "update",
			email:          domain.RawEmail{Subject: "Re: Free chair B-123", Text: "Moved it next to the door"},
			expectedKind:   domain.OutcomeUpdate,
			expectedThread: chair,
		},
		{
			name:           "claim keyword without thread",
			email:          domain.RawEmail{Subject: "Bike taken", Text: "sorry"},
			expectedKind:   domain.OutcomeIgnore,
			expectedReason: domain.IgnoreUnmatched,
		},
		{
			name:           "unmatched reply",
			email:          domain.RawEmail{Subject: "Re: Something else", Text: "hello"},
			expectedKind:   domain.OutcomeIgnore,
			expectedReason: domain.IgnoreUnmatchedReply,
		},
		{
			name:           "reply too short to strip",
			email:          domain.RawEmail{Subject: "Re: ", Text: "hello"},
			expectedKind:   domain.OutcomeIgnore,
			expectedReason: domain.IgnoreUnmatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &subjectResolver{threads: map[string]*domain.Thread{
				"Re: Free chair B-123":     chair,
				"Free chair B-123 claimed": chair,
				"Old lamp":                 lamp,
			}}
			classifier := NewClassifier(resolver, "")

			outcome, err := classifier.Classify(context.Background(), tt.email)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedKind, outcome.Kind)
			assert.Equal(t, tt.expectedReason, outcome.Reason)
			assert.Equal(t, tt.expectedThread, outcome.Thread)
			assert.Nil(t, outcome.Delegated)
		})
	}
}

func TestClassifier_OwnMessageIsIgnored(t *testing.T) {
	resolver := &subjectResolver{}
	classifier := NewClassifier(resolver, "X-Reuse-App")

	outcome, err := classifier.Classify(context.Background(), domain.RawEmail{
		Subject: "Free chair B-123",
		Text:    "claimed",
		Headers: map[string]string{"X-Reuse-App": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnore, outcome.Kind)
	assert.Equal(t, domain.IgnoreOwnMessage, outcome.Reason)
	assert.Empty(t, resolver.calls)
}

func TestClassifier_HeaderKeysAreCaseSensitive(t *testing.T) {
	resolver := &subjectResolver{}
	classifier := NewClassifier(resolver, "X-Reuse-App")

	outcome, err := classifier.Classify(context.Background(), domain.RawEmail{
		Subject: "Free chair",
		Text:    "Come get it",
		Headers: map[string]string{"x-reuse-app": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNewPost, outcome.Kind)
}

func TestClassifier_StrippedReplyIsDelegated(t *testing.T) {
	lamp := newThread("Old lamp")
	resolver := &subjectResolver{threads: map[string]*domain.Thread{"Old lamp": lamp}}
	classifier := NewClassifier(resolver, "")

	outcome, err := classifier.Classify(context.Background(), domain.RawEmail{
		Sender:  "bob@example.com",
		Subject: "Re: Old lamp",
		Text:    "It's taken",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnore, outcome.Kind)
	assert.Equal(t, domain.IgnoreDelegated, outcome.Reason)
	require.NotNil(t, outcome.Delegated)
	assert.Equal(t, domain.OutcomeClaim, outcome.Delegated.Kind)
	assert.Equal(t, lamp, outcome.Delegated.Thread)
	assert.Equal(t, "Old lamp", outcome.Delegated.Email.Subject)
	assert.Equal(t, "bob@example.com", outcome.Delegated.Email.Sender)
	assert.Same(t, outcome.Delegated, outcome.Effective())
	assert.Equal(t, []string{"Re: Old lamp", "Old lamp", "Old lamp"}, resolver.calls)
}

func TestClassifier_DelegationIsNotNested(t *testing.T) {
	resolver := &subjectResolver{}
	classifier := NewClassifier(resolver, "")

	outcome, err := classifier.classify(context.Background(), domain.RawEmail{Subject: "Re: Re: Old lamp", Text: "?"}, false)

	require.NoError(t, err)
	assert.Equal(t, domain.IgnoreUnmatchedReply, outcome.Reason)
	assert.Nil(t, outcome.Delegated)
}

func TestHasClaimKeyword(t *testing.T) {
	tests := []struct {
		email    domain.RawEmail
		expected bool
	}{
		{domain.RawEmail{Subject: "Chair CLAIMED"}, true},
		{domain.RawEmail{Subject: "Chair", Text: "it's been taken"}, true},
		{domain.RawEmail{Subject: "All Gone!"}, true},
		{domain.RawEmail{Subject: "Chair", Text: "Still here"}, false},
		{domain.RawEmail{}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HasClaimKeyword(tt.email), tt.email.Subject)
	}
}

func TestIsReply(t *testing.T) {
	assert.True(t, IsReply("Re: chair"))
	assert.True(t, IsReply("RE:chair"))
	assert.True(t, IsReply("re: chair"))
	assert.False(t, IsReply("Fw: chair"))
	assert.False(t, IsReply("Red chair"))
	assert.False(t, IsReply("Re"))
}
