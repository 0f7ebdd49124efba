package sessionstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface. Sessions live for the life of the process; there is no
// eviction beyond explicit Delete and no persistence across restarts.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

// Create stores the session under a freshly generated identifier. The
// identifier is random and carries no information derived from the
// credentials.
func (r *InMemoryRepo) Create(session Session) (string, error) {
	if session.AccessToken == "" {
		return "", fmt.Errorf("session requires an access token")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	sessionID := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = session
	return sessionID, nil
}

// Get retrieves a session by its identifier
func (r *InMemoryRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, ErrNotFound
	}

	return session, nil
}

// Delete removes a session; absent identifiers are not an error
func (r *InMemoryRepo) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
