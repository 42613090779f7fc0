// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ClubSphere.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: CLUBSPHERE_MONGO_URI, CLUBSPHERE_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "clubsphere", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity token verification
	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC secret for bearer token verification (must be strong in production)"},
	{Name: "jwt_issuer", Default: "", Desc: "Expected token issuer (blank disables the check)"},
	{Name: "token_cache_ttl", Default: "5m", Desc: "How long a verified token is cached (e.g., 5m, 30s)"},

	// Hosted checkout provider
	{Name: "checkout_base_url", Default: "https://api.stripe.com", Desc: "Checkout provider API base URL"},
	{Name: "checkout_secret_key", Default: "", Desc: "Checkout provider API secret key"},
	{Name: "checkout_success_url", Default: "http://localhost:5173/payment/success", Desc: "Redirect URL after a completed payment"},
	{Name: "checkout_cancel_url", Default: "http://localhost:5173/payment/cancel", Desc: "Redirect URL after an abandoned payment"},

	// CORS
	{Name: "allowed_origins", Default: "http://localhost:5173", Desc: "Comma-separated browser origins allowed to call the API"},

	// Open join endpoint rate limiting
	{Name: "join_rate_limit", Default: 20, Desc: "Requests allowed per client IP per window on the open join endpoint"},
	{Name: "join_rate_window", Default: "1m", Desc: "Sliding window for the join rate limit"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email of the admin user (promotes/creates on startup)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, CLUBSPHERE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLUBSPHERE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret:     appValues.String("jwt_secret"),
		JWTIssuer:     appValues.String("jwt_issuer"),
		TokenCacheTTL: appValues.Duration("token_cache_ttl", 5*time.Minute),

		CheckoutBaseURL:    appValues.String("checkout_base_url"),
		CheckoutSecretKey:  appValues.String("checkout_secret_key"),
		CheckoutSuccessURL: appValues.String("checkout_success_url"),
		CheckoutCancelURL:  appValues.String("checkout_cancel_url"),

		AllowedOrigins: splitOrigins(appValues.String("allowed_origins")),

		JoinRateLimit:  appValues.Int("join_rate_limit"),
		JoinRateWindow: appValues.Duration("join_rate_window", time.Minute),

		AdminEmail: appValues.String("admin_email"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// ClubSphere validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and refuses to start in
// production with the development JWT secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" {
		if strings.HasPrefix(appCfg.JWTSecret, "dev-only-") {
			return fmt.Errorf("jwt_secret must be set in production")
		}
		if appCfg.CheckoutSecretKey == "" {
			return fmt.Errorf("checkout_secret_key must be set in production")
		}
	}

	if appCfg.JoinRateLimit <= 0 {
		return fmt.Errorf("join_rate_limit must be positive")
	}

	return nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
