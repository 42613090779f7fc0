// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	blogsfeature "github.com/clubsphere/clubsphere/internal/app/features/blogs"
	clubsfeature "github.com/clubsphere/clubsphere/internal/app/features/clubs"
	eventsfeature "github.com/clubsphere/clubsphere/internal/app/features/events"
	faqsfeature "github.com/clubsphere/clubsphere/internal/app/features/faqs"
	healthfeature "github.com/clubsphere/clubsphere/internal/app/features/health"
	joinclubsfeature "github.com/clubsphere/clubsphere/internal/app/features/joinclubs"
	joineventsfeature "github.com/clubsphere/clubsphere/internal/app/features/joinevents"
	memberrequestsfeature "github.com/clubsphere/clubsphere/internal/app/features/memberrequests"
	paymentsfeature "github.com/clubsphere/clubsphere/internal/app/features/payments"
	usersfeature "github.com/clubsphere/clubsphere/internal/app/features/users"
	wingsfeature "github.com/clubsphere/clubsphere/internal/app/features/wings"
	userstore "github.com/clubsphere/clubsphere/internal/app/store/users"
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/authz"
	"github.com/clubsphere/clubsphere/internal/app/system/checkout"
	"github.com/clubsphere/clubsphere/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. ClubSphere builds the token
// verifier, the admin middleware, and the checkout client here, then
// mounts one feature router per API area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.ClubSphereMongoDatabase

	verifier := auth.NewJWTVerifier(appCfg.JWTSecret, appCfg.JWTIssuer, appCfg.TokenCacheTTL)
	requireAdmin := authz.RequireAdmin(userstore.New(db), logger)
	provider := checkout.NewClient(appCfg.CheckoutBaseURL, appCfg.CheckoutSecretKey)
	joinLimiter := ratelimit.New(appCfg.JoinRateLimit, appCfg.JoinRateWindow)

	r := chi.NewRouter()

	// Browser clients call this API cross-origin with bearer tokens.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ClubSphereMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Public catalog
	clubsHandler := clubsfeature.NewHandler(db, logger)
	r.Mount("/clubs", clubsfeature.Routes(clubsHandler))

	wingsHandler := wingsfeature.NewHandler(db, logger)
	r.Mount("/wings", wingsfeature.Routes(wingsHandler))

	eventsHandler := eventsfeature.NewHandler(db, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	faqsHandler := faqsfeature.NewHandler(db, logger)
	r.Mount("/faqs", faqsfeature.Routes(faqsHandler))

	blogsHandler := blogsfeature.NewHandler(db, logger)
	r.Mount("/blogs", blogsfeature.Routes(blogsHandler))

	// Membership
	joinClubsHandler := joinclubsfeature.NewHandler(db, logger)
	r.Mount("/joinClubs", joinclubsfeature.Routes(joinClubsHandler, verifier, joinLimiter))

	joinEventsHandler := joineventsfeature.NewHandler(db, logger)
	r.Mount("/joinEvents", joineventsfeature.Routes(joinEventsHandler, verifier))

	// Payments
	paymentsHandler := paymentsfeature.NewHandler(db, provider, paymentsfeature.URLs{
		Success: appCfg.CheckoutSuccessURL,
		Cancel:  appCfg.CheckoutCancelURL,
	}, logger)
	r.Mount("/payments", paymentsfeature.Routes(paymentsHandler, verifier))

	// Users and role management
	usersHandler := usersfeature.NewHandler(db, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, verifier, requireAdmin))

	requestsHandler := memberrequestsfeature.NewHandler(db, logger)
	r.Mount("/memberRequests", memberrequestsfeature.Routes(requestsHandler, verifier, requireAdmin))

	return r, nil
}
