package server

import (
	"context"
	"net/http"

	"github.com/fleetgate/fleetgate/server/sessionstore"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the resolved session for the request
const ContextKeySession ContextKey = "session"

// RequireSession is middleware for the vehicle API routes. It resolves
// the session cookie against the store and injects the credential pair
// into the request context. Requests without a valid session are
// rejected with 401 before the wrapped handler (and therefore any
// upstream call) runs. A missing session is an expected state, not an
// error.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sessionID := cookieValue(r, sessionCookieName)
			if sessionID == "" {
				respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				return
			}

			session, err := s.sessions.Get(sessionID)
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next(w, r.WithContext(ctx))
		}
	}
}

// SessionFromContext returns the session injected by RequireSession.
func SessionFromContext(ctx context.Context) (sessionstore.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(sessionstore.Session)
	return session, ok
}
