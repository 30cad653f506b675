// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires the app into WAFFLE's lifecycle.
// There is no database, so ConnectDB and EnsureSchema are left unset.
var Hooks = app.Hooks[AppConfig, Deps]{
	Name:           "ayudahub",
	LoadConfig:     LoadConfig,
	ValidateConfig: ValidateConfig,
	Startup:        Startup,
	BuildHandler:   BuildHandler,
	Shutdown:       Shutdown,
}
