// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	applicationsfeature "github.com/dalemusser/ayudahub/internal/app/features/applications"
	errorsfeature "github.com/dalemusser/ayudahub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/ayudahub/internal/app/features/health"
	homefeature "github.com/dalemusser/ayudahub/internal/app/features/home"
	applicationstore "github.com/dalemusser/ayudahub/internal/app/store/applications"
	"github.com/dalemusser/ayudahub/internal/app/system/ratelimit"
	"github.com/dalemusser/ayudahub/internal/app/system/session"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration and Startup have completed. The
// application registry is created here: every visitor's store lives as long
// as the handler tree that owns it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := session.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	loc, err := time.LoadLocation(appCfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("load display time zone: %w", err)
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	registry := applicationstore.NewRegistry()

	var limiter *ratelimit.Store
	if appCfg.RateLimitRPS > 0 {
		limiter = ratelimit.NewStore(float64(appCfg.RateLimitRPS), appCfg.RateLimitBurst)
	}

	r := chi.NewRouter()

	// Every page below needs an applicant id to pick the visitor's store.
	r.Use(sessionMgr.LoadApplicant)

	healthHandler := healthfeature.NewHandler(registry, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	appsHandler := applicationsfeature.NewHandler(registry, sessionMgr, appCfg.ExcerptLength, loc, errLog, logger)
	r.Mount("/applications", applicationsfeature.Routes(appsHandler, limiter))

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
