package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthLogin    = "/auth/login"
	RouteAuthCallback = "/auth/callback"
	RouteAuthSession  = "/auth/session"
	RouteAuthLogout   = "/auth/logout"

	// Vehicle API Routes (session-guarded proxy to the Fleet API)
	RouteAPIVehicles        = "/api/vehicles"
	RouteAPIVehicle         = "/api/vehicles/{id}"
	RouteAPIVehicleLocation = "/api/vehicles/{id}/location"
	RouteAPIVehicleCharge   = "/api/vehicles/{id}/charge"

	// Partner registration key file served for Tesla's domain verification
	RouteWellKnownPublicKey = "/.well-known/appspecific/com.tesla.3p.public-key.pem"
)
