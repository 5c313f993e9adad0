// Package mailparse turns RFC 5322 messages into the RawEmail the engine ingests.
package mailparse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/k3a/html2text"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
)

// Parse reads a full message. Header keys are kept as written and a repeated
// header keeps its last value. The body is the first text/plain part, or the first
// text/html part converted to text when there is no plain part.
func Parse(r io.Reader) (domain.RawEmail, error) {
	entity, err := message.Read(r)
	if err != nil && !message.IsUnknownCharset(err) && !message.IsUnknownEncoding(err) {
		return domain.RawEmail{}, fmt.Errorf("failed to read message: %w", err)
	}
	if err != nil {
		log.WithError(err).Warn("Reading message with unknown charset or encoding")
	}

	header := mail.Header{Header: entity.Header}

	subject, err := header.Subject()
	if err != nil {
		subject = header.Get("Subject")
	}

	email := domain.RawEmail{
		Sender:  sender(header),
		Subject: strings.TrimSpace(subject),
		Headers: headers(entity.Header),
	}

	plain, html, err := bodies(entity)
	if err != nil {
		return domain.RawEmail{}, err
	}
	switch {
	case plain != "":
		email.Text = plain
	case html != "":
		email.Text = html2text.HTML2Text(html)
	}
	email.Text = strings.TrimSpace(email.Text)

	return email, nil
}

func sender(header mail.Header) string {
	from, err := header.AddressList("From")
	if err == nil && len(from) > 0 {
		return from[0].Address
	}
	return strings.TrimSpace(header.Get("From"))
}

func headers(h message.Header) map[string]string {
	out := make(map[string]string)
	fields := h.Fields()
	for fields.Next() {
		value, err := fields.Text()
		if err != nil {
			value = fields.Value()
		}
		out[fields.Key()] = value
	}
	return out
}

// bodies walks the MIME tree and returns the first plain and first html body found.
func bodies(entity *message.Entity) (plain, html string, err error) {
	var walk func(*message.Entity) error
	walk = func(e *message.Entity) error {
		if mr := e.MultipartReader(); mr != nil {
			for {
				part, err := mr.NextPart()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil && !message.IsUnknownCharset(err) {
					return fmt.Errorf("failed to read multipart: %w", err)
				}
				if err := walk(part); err != nil {
					return err
				}
			}
		}

		if disposition, _, _ := e.Header.ContentDisposition(); disposition == "attachment" {
			return nil
		}

		mediaType, _, _ := e.Header.ContentType()
		if mediaType == "" {
			mediaType = "text/plain"
		}
		if mediaType != "text/plain" && mediaType != "text/html" {
			return nil
		}

		content, err := io.ReadAll(e.Body)
		if err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}

		switch {
		case mediaType == "text/plain" && plain == "":
			plain = string(content)
		case mediaType == "text/html" && html == "":
			html = string(content)
		}
		return nil
	}

	err = walk(entity)
	return plain, html, err
}
