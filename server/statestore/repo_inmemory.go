package statestore

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

const (
	// defaultTTL bounds how long an in-flight login attempt stays valid.
	defaultTTL = 10 * time.Minute

	// defaultSweepInterval is how often expired tokens are removed.
	defaultSweepInterval = time.Minute

	stateTokenBytes = 32
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface. Expired tokens are rejected lazily on read and reaped by a
// background sweep.
type InMemoryRepo struct {
	mu        sync.Mutex
	deadlines map[string]time.Time

	ttl           time.Duration
	sweepInterval time.Duration
	stopSweep     chan struct{}
	stopOnce      sync.Once
}

// NewInMemoryRepo creates a state repository with the default 10-minute
// token lifetime and starts its background sweep.
func NewInMemoryRepo() *InMemoryRepo {
	return NewInMemoryRepoWithTTL(defaultTTL, defaultSweepInterval)
}

// NewInMemoryRepoWithTTL creates a state repository with a custom token
// lifetime and sweep interval. Non-positive values fall back to defaults.
func NewInMemoryRepoWithTTL(ttl, sweepInterval time.Duration) *InMemoryRepo {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}

	r := &InMemoryRepo{
		deadlines:     make(map[string]time.Time),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		stopSweep:     make(chan struct{}),
	}

	go r.sweepLoop()

	return r
}

// Issue generates a random token and registers it with a deadline.
func (r *InMemoryRepo) Issue() string {
	token := generateRandomString(stateTokenBytes)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.deadlines[token] = time.Now().Add(r.ttl)
	return token
}

// Validate checks candidate against the cookie channel and the fallback
// set. The candidate is consumed from the set whichever channel matched,
// so a replayed value never validates twice through the set. A candidate
// past its deadline does not validate through the set; a cookie match
// alone is accepted regardless, since the cookie is the primary channel.
func (r *InMemoryRepo) Validate(candidate, cookieValue string) bool {
	if candidate == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deadline, inSet := r.deadlines[candidate]
	if inSet {
		delete(r.deadlines, candidate)
	}

	live := inSet && time.Now().Before(deadline)
	return candidate == cookieValue || live
}

// Stop terminates the background sweep. Safe to call more than once.
func (r *InMemoryRepo) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopSweep)
	})
}

func (r *InMemoryRepo) sweepLoop() {
	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopSweep:
			return
		}
	}
}

func (r *InMemoryRepo) sweep() {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for token, deadline := range r.deadlines {
		if now.After(deadline) {
			delete(r.deadlines, token)
		}
	}
}

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
