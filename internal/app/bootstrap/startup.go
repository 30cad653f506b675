// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/ayudahub/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization before the HTTP handler
// is built. Shared layout templates are registered here so they are in
// place when the template engine boots.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	logger.Info("ayudahub starting",
		zap.String("env", coreCfg.Env),
		zap.String("display_timezone", appCfg.DisplayTimezone),
		zap.Int("excerpt_length", appCfg.ExcerptLength),
		zap.Int("rate_limit_rps", appCfg.RateLimitRPS))
	return nil
}
