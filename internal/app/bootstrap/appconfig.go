// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; ports, TLS, log level and
// request limits stay in WAFFLE's CoreConfig.
type AppConfig struct {
	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: ayudahub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Display configuration
	ExcerptLength   int    // Max runes of the reason shown on each card
	DisplayTimezone string // IANA zone used to format submission dates

	// Form submission throttling (per client IP)
	RateLimitRPS   int // Sustained submissions per second; 0 disables limiting
	RateLimitBurst int // Burst size
}
