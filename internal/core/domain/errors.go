package domain

import "errors"

var (
	ErrThreadNotFound = errors.New("thread not found")
	ErrMalformedEmail = errors.New("malformed email")
)
