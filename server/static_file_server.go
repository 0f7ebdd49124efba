package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FileServerHandler serves the built browser bundle from dir. The bundle
// is produced by a separate frontend build, so it is read from disk
// rather than embedded; a missing directory means the server runs
// API-only and this returns nil.
func FileServerHandler(dir string) http.Handler {
	if !hasClientBundle(dir) {
		return nil
	}

	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Paths without a matching file fall back to index.html so the
		// client-side router can handle them.
		path := filepath.Join(dir, filepath.Clean(strings.TrimPrefix(r.URL.Path, "/")))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}

func (s *Server) staticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.fileServer == nil {
			// Dev mode: the frontend is served by the vite dev server.
			http.NotFound(w, r)
			return
		}
		s.fileServer.ServeHTTP(w, r)
	}
}
