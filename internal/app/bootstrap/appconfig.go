// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS
// ports, TLS, logging level, request limits); AppConfig is everything
// specific to this application. The struct is passed to most lifecycle
// hooks, so any configuration needed during startup, request handling,
// or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max driver connection pool size
	MongoMinPoolSize uint64 // Min driver connection pool size

	// Identity token verification
	JWTSecret     string        // HMAC secret for bearer token verification
	JWTIssuer     string        // Expected token issuer (blank disables the check)
	TokenCacheTTL time.Duration // How long a verified token is cached

	// Hosted checkout provider
	CheckoutBaseURL    string // Provider API base URL
	CheckoutSecretKey  string // Provider API secret key
	CheckoutSuccessURL string // Where the provider redirects after payment
	CheckoutCancelURL  string // Where the provider redirects on abandon

	// CORS
	AllowedOrigins []string // Browser origins allowed to call the API

	// Open join endpoint rate limiting
	JoinRateLimit  int           // Requests allowed per client IP per window
	JoinRateWindow time.Duration // Sliding window size

	// Admin bootstrap
	AdminEmail string // Email promoted/created as admin on startup (blank disables)
}
