// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// minProdSessionKeyLen is the shortest signing key accepted in prod.
const minProdSessionKeyLen = 32

// defaultSessionKey is the shipped development key. It is refused in prod.
const defaultSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for ayudahub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_name, excerpt_length, etc.
//   - Environment variables: AYUDAHUB_SESSION_NAME, AYUDAHUB_EXCERPT_LENGTH, etc.
//   - Command-line flags: --session_name, --excerpt_length, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: defaultSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "ayudahub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "excerpt_length", Default: 160, Desc: "Max characters of the application reason shown in the list"},
	{Name: "display_timezone", Default: "America/Santiago", Desc: "Time zone used to display submission dates"},

	{Name: "rate_limit_rps", Default: 2, Desc: "Form submissions per second per client IP (0 disables)"},
	{Name: "rate_limit_burst", Default: 10, Desc: "Form submission burst per client IP"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// AYUDAHUB_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "AYUDAHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		ExcerptLength:   appValues.Int("excerpt_length"),
		DisplayTimezone: appValues.String("display_timezone"),

		RateLimitRPS:   appValues.Int("rate_limit_rps"),
		RateLimitBurst: appValues.Int("rate_limit_burst"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SessionName == "" {
		return fmt.Errorf("session_name must not be empty")
	}
	if coreCfg != nil && coreCfg.Env == "prod" {
		if appCfg.SessionKey == defaultSessionKey {
			return fmt.Errorf("session_key must be set in prod; the default development key is not allowed")
		}
		if len(appCfg.SessionKey) < minProdSessionKeyLen {
			return fmt.Errorf("session_key must be at least %d characters in prod", minProdSessionKeyLen)
		}
	}
	if appCfg.ExcerptLength <= 0 {
		return fmt.Errorf("excerpt_length must be positive, got %d", appCfg.ExcerptLength)
	}
	if _, err := time.LoadLocation(appCfg.DisplayTimezone); err != nil {
		logger.Error("invalid display time zone", zap.String("display_timezone", appCfg.DisplayTimezone), zap.Error(err))
		return fmt.Errorf("invalid display_timezone %q: %w", appCfg.DisplayTimezone, err)
	}
	if appCfg.RateLimitRPS < 0 || appCfg.RateLimitBurst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}
	if appCfg.RateLimitRPS > 0 && appCfg.RateLimitBurst == 0 {
		return fmt.Errorf("rate_limit_burst must be positive when rate_limit_rps is set")
	}
	return nil
}
