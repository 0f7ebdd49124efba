package statestore

// Repo tracks anti-CSRF state tokens for in-flight OAuth login attempts.
//
// A token is carried to the provider and back on two channels: an httpOnly
// cookie set on the browser, and a server-side fallback set. The fallback
// exists because intermediary proxies can strip or rewrite Set-Cookie on
// the login redirect; validating against the set alone weakens the strict
// browser binding, which is an accepted trade-off for a single-tenant
// deployment.
type Repo interface {
	// Issue generates a random state token and registers it in the
	// fallback set with a deadline.
	Issue() string

	// Validate reports whether candidate is an acceptable state value.
	// It succeeds when candidate is non-empty and either matches the
	// cookie channel or is live in the fallback set. A token validates
	// at most once: success consumes it from the set.
	Validate(candidate, cookieValue string) bool
}
