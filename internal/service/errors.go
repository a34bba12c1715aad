package service

import "errors"

// Error taxonomy of the quiz engine. All four are recoverable at the
// delivery boundary: the adapter maps each to a user-facing message
// and no operation ever leaves a half-created session behind.
var (
	// ErrInvalidRequest means malformed start parameters (empty or
	// over-long topic, question count out of range).
	ErrInvalidRequest = errors.New("invalid quiz request")

	// ErrInvalidInput means an answer label outside A-D. It is
	// reported before the session is even looked up.
	ErrInvalidInput = errors.New("invalid answer input")

	// ErrContentUnavailable means the content provider failed or
	// returned an unusable payload. No session is created or altered.
	ErrContentUnavailable = errors.New("quiz content unavailable")

	// ErrNoActiveSession means the owner has no session: it expired,
	// never started, or was superseded by a newer quiz.
	ErrNoActiveSession = errors.New("no active quiz session")
)
