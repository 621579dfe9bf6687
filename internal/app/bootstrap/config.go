// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for MatterHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, site_name, etc.
//   - Environment variables: MATTERHUB_MONGO_URI, MATTERHUB_SITE_NAME, etc.
//   - Command-line flags: --mongo_uri, --site_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "matterhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "csrf_key", Default: "dev-only-change-me-0123456789ABC", Desc: "CSRF signing key (32 bytes; must be strong in production)"},
	{Name: "site_name", Default: "MatterHub", Desc: "Site name shown in page chrome"},

	// Live list sockets
	{Name: "live_write_timeout", Default: "10s", Desc: "Write deadline per pushed snapshot (e.g., 10s)"},
	{Name: "live_ping_interval", Default: "30s", Desc: "Keepalive ping cadence for live sockets (e.g., 30s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MATTERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CSRFKey:  appValues.String("csrf_key"),
		SiteName: appValues.String("site_name"),

		LiveWriteTimeout: appValues.Duration("live_write_timeout", 10*time.Second),
		LivePingInterval: appValues.Duration("live_ping_interval", 30*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// MatterHub validates the MongoDB URI format and the CSRF key length to
// catch configuration errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}

	return nil
}
