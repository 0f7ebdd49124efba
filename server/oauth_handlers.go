package server

import (
	"errors"
	"net/http"

	"github.com/fleetgate/fleetgate/server/sessionstore"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// LoginHandler starts the authorization-code flow: it issues a state
// token, sets it as a cookie, and redirects the browser to Tesla's
// authorization page.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := s.states.Issue()
		s.SetStateCookie(w, state)

		authURL := s.oauth.AuthCodeURL(state)

		log.Info().Str("redirect_uri", s.oauth.RedirectURL).Msg("starting OAuth flow")
		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// OAuthCallbackHandler completes the flow: it validates the returned
// state, exchanges the authorization code for tokens, and issues a
// session cookie. Failures redirect back to the app root with a coarse
// error indicator; upstream error bodies are logged, never surfaced to
// the browser.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		state := r.URL.Query().Get("state")
		cookieState := cookieValue(r, stateCookieName)

		if code == "" || !s.states.Validate(state, cookieState) {
			log.Error().
				Bool("code_present", code != "").
				Bool("cookie_present", cookieState != "").
				Msg("callback rejected: invalid state or missing code")
			http.Redirect(w, r, "/?error=invalid_state", http.StatusFound)
			return
		}

		log.Info().Msg("exchanging authorization code for tokens")
		token, err := s.oauth.Exchange(r.Context(), code)
		if err != nil {
			logExchangeError(err)
			http.Redirect(w, r, "/?error=token_error", http.StatusFound)
			return
		}

		// A token response without an access token never becomes a session.
		if token.AccessToken == "" {
			log.Error().Msg("token exchange returned no access token")
			http.Redirect(w, r, "/?error=token_error", http.StatusFound)
			return
		}

		sessionID, err := s.sessions.Create(sessionstore.Session{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create session")
			http.Redirect(w, r, "/?error=token_error", http.StatusFound)
			return
		}

		log.Info().Msg("tokens received, session created")

		s.SetSessionCookie(w, sessionID)
		s.ClearStateCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// logExchangeError logs the provider's rejection, including the raw
// response body when the oauth2 library captured one.
func logExchangeError(err error) {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		log.Error().
			Int("status", retrieveErr.Response.StatusCode).
			Str("body", string(retrieveErr.Body)).
			Msg("token exchange rejected by provider")
		return
	}
	log.Error().Err(err).Msg("token exchange failed")
}
