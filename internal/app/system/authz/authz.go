// internal/app/system/authz/authz.go

// Package authz gates admin-only routes. Roles live in the users
// collection, not in the token, so a role change takes effect on the
// next request without re-issuing tokens.
package authz

import (
	"context"
	"errors"
	"net/http"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// RoleLookup resolves a user's role by email. Implemented by the user
// store; an absent profile must surface as mongo.ErrNoDocuments.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAdmin allows the request through only when the verified caller
// has the admin role. It must be mounted after auth.RequireAuth.
//
// Missing profile and non-admin roles both answer 403; only a store
// failure answers 500.
func RequireAdmin(roles RoleLookup, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.CurrentIdentity(r)
			if !ok {
				httpjson.Unauthorized(w, "unauthorized access")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()

			role, err := roles.RoleByEmail(ctx, id.Email)
			if err != nil {
				if isNotFound(err) {
					httpjson.Forbidden(w, "forbidden access")
					return
				}
				logger.Error("admin check: role lookup failed",
					zap.String("email", id.Email),
					zap.Error(err))
				httpjson.ServerError(w, "role lookup failed")
				return
			}

			if role != models.RoleAdmin {
				httpjson.Forbidden(w, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
