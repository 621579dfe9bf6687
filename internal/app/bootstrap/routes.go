// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	casesfeature "github.com/dalemusser/matterhub/internal/app/features/cases"
	contactsfeature "github.com/dalemusser/matterhub/internal/app/features/contacts"
	errorsfeature "github.com/dalemusser/matterhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/matterhub/internal/app/features/health"
	mattersfeature "github.com/dalemusser/matterhub/internal/app/features/matters"
	notesfeature "github.com/dalemusser/matterhub/internal/app/features/notes"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// MatterHub initializes the template engine, applies CSRF protection,
// and mounts feature routers for the case dashboard, matter detail pages,
// and their nested contact and note routes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Shared settings for the live list websockets.
	live := livepush.Config{
		WriteTimeout: appCfg.LiveWriteTimeout,
		PingInterval: appCfg.LivePingInterval,
		Log:          logger,
	}

	r := chi.NewRouter()

	// CSRF protection for all mutating form posts. Safe methods (GET, HEAD)
	// pass through, which also lets the live websocket upgrades proceed.
	csrfMW := csrf.Protect(
		[]byte(appCfg.CSRFKey),
		csrf.Secure(coreCfg.Env == "prod"),
		csrf.Path("/"),
	)
	r.Use(csrfMW)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// The dashboard is the landing page.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/cases", http.StatusSeeOther)
	})

	// Case dashboard and intake
	casesHandler := casesfeature.NewHandler(deps.MongoDatabase, errLog, live, logger)
	r.Mount("/cases", casesfeature.Routes(casesHandler))

	// Matter detail pages with nested contact and note routes
	contactsHandler := contactsfeature.NewHandler(deps.MongoDatabase, errLog, live, logger)
	notesHandler := notesfeature.NewHandler(deps.MongoDatabase, errLog, live, logger)
	mattersHandler := mattersfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/matters", mattersfeature.Routes(mattersHandler, contactsHandler, notesHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
