package server

import "net/http"

// SessionHandler reports whether the request carries a live session. It
// only ever answers 200; "not logged in" is a normal state here.
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := cookieValue(r, sessionCookieName)

		authenticated := false
		if sessionID != "" {
			if _, err := s.sessions.Get(sessionID); err == nil {
				authenticated = true
			}
		}

		respondJSON(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
	}
}

// LogoutHandler drops the store entry and clears the cookie. Logging out
// without a session is still a success.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionID := cookieValue(r, sessionCookieName); sessionID != "" {
			_ = s.sessions.Delete(sessionID)
			s.ClearSessionCookie(w)
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
