package server

func (s *Server) initRoutes() {
	// Tesla partner registration fetches this during domain verification
	s.RegisterRouteFunc("GET "+RouteWellKnownPublicKey, s.PublicKeyHandler())

	// LOGIN / LOGOUT
	s.RegisterRouteFunc("GET "+RouteAuthLogin, s.LoginHandler())
	s.RegisterRouteFunc("GET "+RouteAuthCallback, s.OAuthCallbackHandler())
	s.RegisterRouteFunc("GET "+RouteAuthSession, s.SessionHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogout, s.LogoutHandler())

	// Vehicle API routes (require a valid session before any upstream call)
	s.RegisterRouteHandler("GET "+RouteAPIVehicles, ChainMiddleware(s.VehiclesHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteAPIVehicle, ChainMiddleware(s.VehicleDataHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteAPIVehicleLocation, ChainMiddleware(s.VehicleLocationHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteAPIVehicleCharge, ChainMiddleware(s.VehicleChargeHandler(), s.APIMiddleware(s.RequireSession())...))

	// Client bundle (production builds only)
	s.RegisterRouteHandler("GET /", ChainMiddleware(s.staticHandler(), s.APIMiddleware()...))
}
