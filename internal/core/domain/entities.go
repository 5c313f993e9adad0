package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationUndetermined is stored when no location could be extracted from a post.
const LocationUndetermined = "undetermined"

// RawEmail is an inbound message as handed over by the mail-receiving boundary.
type RawEmail struct {
	Sender  string            `json:"sender" validate:"required"`
	Subject string            `json:"subject" validate:"required"`
	Text    string            `json:"text" validate:"required"`
	Headers map[string]string `json:"headers"`
}

// HasHeader reports whether the exact (case-sensitive) header key is present.
func (e RawEmail) HasHeader(key string) bool {
	_, ok := e.Headers[key]
	return ok
}

// WithSubject returns a copy of the email carrying another subject.
func (e RawEmail) WithSubject(subject string) RawEmail {
	e.Subject = subject
	return e
}

type Coordinates struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
}

// Thread groups the emails and items of one conversation.
type Thread struct {
	ID      uuid.UUID `json:"id"`
	Subject string    `json:"subject"`
	// CorrelationToken is used as In-Reply-To by outbound replies. Empty until known.
	CorrelationToken string     `json:"correlation_token"`
	LastModified     *time.Time `json:"last_modified"`
}

// Touch advances LastModified to at. It never moves backwards.
func (t *Thread) Touch(at time.Time) {
	if t.LastModified == nil || at.After(*t.LastModified) {
		at := at
		t.LastModified = &at
	}
}

// ModifiedAfter reports whether the thread was touched strictly after cutoff.
func (t *Thread) ModifiedAfter(cutoff time.Time) bool {
	return t.LastModified != nil && t.LastModified.After(cutoff)
}

type Item struct {
	ID          uuid.UUID    `json:"id"`
	ThreadID    uuid.UUID    `json:"thread_id"`
	PostEmailID uuid.UUID    `json:"post_email_id"`
	Name        string       `json:"name"`
	Sender      string       `json:"sender"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Claimed     bool         `json:"claimed"`
	IsFromEmail bool         `json:"is_from_email"`
	ModifiedAt  time.Time    `json:"modified_at"`
}

type PostedEmail struct {
	ID         uuid.UUID
	ThreadID   uuid.UUID
	Sender     string
	Subject    string
	Text       string
	Location   string
	ReceivedAt time.Time
	ModifiedAt time.Time
}

type ClaimEmail struct {
	ID         uuid.UUID
	ThreadID   uuid.UUID
	Sender     string
	Subject    string
	Text       string
	ItemIDs    []uuid.UUID
	ReceivedAt time.Time
	ModifiedAt time.Time
}
