package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for event operations. Every failure surfaced by an
// EventService matches exactly one operation kind with errors.Is.
var (
	ErrNotCreated = errors.New("event not created")
	ErrNotFound   = errors.New("event not found")
	ErrNotUpdated = errors.New("event not updated")
	ErrInternal   = errors.New("internal error")
)

// ErrNotDeleted reports a failed delete. It wraps ErrInternal so callers that
// still check for the generic kind keep matching.
var ErrNotDeleted = fmt.Errorf("event not deleted: %w", ErrInternal)
