package sessionstore

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no session exists for the given
// identifier. Callers treat it as "not authenticated", not as a failure.
var ErrNotFound = errors.New("session not found")

// Session holds the credential pair issued by the identity provider.
// Tokens are opaque to this service: stored verbatim, never parsed.
// The refresh token is kept for a future refresh flow but is unused.
type Session struct {
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
}

// Repo maps opaque session identifiers to credential pairs. The
// identifier is the only value that ever reaches the browser; the
// credentials stay server-side.
type Repo interface {
	// Create stores the session under a new opaque identifier and
	// returns it. Sessions without an access token are rejected.
	Create(session Session) (string, error)

	// Get returns the session for the identifier, or ErrNotFound.
	Get(sessionID string) (Session, error)

	// Delete removes the session. Deleting an absent identifier is a
	// no-op.
	Delete(sessionID string) error
}
