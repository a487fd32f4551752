package models

import "errors"

// Validation errors. Recoverable by the caller: fix the draft and resubmit.
var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrEmptyContent    = errors.New("content must not be empty")
	ErrContentTooShort = errors.New("content is below the minimum word count")
)

// Workflow errors. Surfaced verbatim; retrying AlreadyDecided is wrong
// because it signals a terminal, already-resolved state.
var (
	ErrNotFound       = errors.New("article not found")
	ErrAlreadyDecided = errors.New("article already decided")
	ErrUnauthorized   = errors.New("unauthorized")
)

// ErrStoreUnavailable wraps infrastructure failures of the article store so
// callers can tell them apart from workflow outcomes.
var ErrStoreUnavailable = errors.New("article store unavailable")
