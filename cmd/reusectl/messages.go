package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/mailparse"
)

// readEmail parses the RFC 5322 message at path, or stdin when path is "-".
func readEmail(path string, stdin io.Reader) (domain.RawEmail, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.RawEmail{}, err
		}
		defer f.Close()
		r = f
	}

	email, err := mailparse.Parse(r)
	if err != nil {
		return domain.RawEmail{}, fmt.Errorf("%s: %w", path, err)
	}
	return email, nil
}

func newInboundMessage(email domain.RawEmail, receivedAt time.Time) domain.InboundEmailMessage {
	return domain.InboundEmailMessage{
		MessageID:  uuid.New(),
		Email:      email,
		ReceivedAt: receivedAt.UTC(),
	}
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
