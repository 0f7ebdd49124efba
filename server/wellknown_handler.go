package server

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
)

// PublicKeyHandler serves the partner public key Tesla fetches during
// third-party app registration. A missing file answers 404 rather than
// failing startup, since the key is only needed once registration runs.
func (s *Server) PublicKeyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicKey, err := os.ReadFile(s.config.GetPublicKeyPath())
		if err != nil {
			log.Warn().Err(err).Str("path", s.config.GetPublicKeyPath()).Msg("public key file not readable")
			http.Error(w, "Public key not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		w.Write(publicKey)
	}
}
