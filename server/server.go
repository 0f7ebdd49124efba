package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/fleetgate/fleetgate/fleet"
	"github.com/fleetgate/fleetgate/internal/config"
	"github.com/fleetgate/fleetgate/server/sessionstore"
	"github.com/fleetgate/fleetgate/server/statestore"
	"golang.org/x/oauth2"
)

// teslaScopes is the fixed scope set requested on every login. The
// command scopes are requested up front so a granted token can drive a
// future command surface without re-consent.
var teslaScopes = []string{
	"openid",
	"offline_access",
	"user_data",
	"vehicle_device_data",
	"vehicle_cmds",
	"vehicle_charging_cmds",
}

type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	sessions   sessionstore.Repo
	states     statestore.Repo
	fleet      *fleet.Client
	oauth      *oauth2.Config
	fileServer http.Handler // nil when no client bundle is present
}

func New(cfg config.Config, sessions sessionstore.Repo, states statestore.Repo, fleetClient *fleet.Client) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		sessions: sessions,
		states:   states,
		fleet:    fleetClient,
		oauth: &oauth2.Config{
			ClientID:     cfg.GetClientID(),
			ClientSecret: cfg.GetClientSecret(),
			// The redirect URI must be byte-identical between the login
			// redirect and the token exchange, so it is computed once
			// from configuration and never from the incoming request.
			RedirectURL: cfg.GetAppURL() + RouteAuthCallback,
			Scopes:      teslaScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.GetAuthURL(),
				TokenURL: cfg.GetTokenURL(),
				// Tesla expects client credentials in the POST body
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler(cfg.GetStaticDir())

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// hasClientBundle reports whether a built browser bundle exists at dir.
// Without one the server runs API-only and the frontend is served by the
// vite dev server.
func hasClientBundle(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
