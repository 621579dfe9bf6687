// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, environment); AppConfig is everything specific to MatterHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Form security
	CSRFKey string // Key for signing CSRF tokens (32 bytes; must be strong in production)

	// Branding
	SiteName string // Site name shown in page chrome

	// Live list sockets
	LiveWriteTimeout time.Duration // Per-snapshot write deadline
	LivePingInterval time.Duration // Keepalive ping cadence
}
