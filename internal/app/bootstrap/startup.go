// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdmin promotes (or creates) the configured admin account so a
// fresh deployment always has at least one admin. Idempotent: running
// it against an existing admin is a no-op.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := deps.ClubSphereMongoDatabase.Collection("users")
	now := time.Now().UTC()

	res, err := users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{"role": models.RoleAdmin},
			"$setOnInsert": bson.M{
				"email":      email,
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return err
	}

	if res.UpsertedCount > 0 {
		logger.Info("created admin user", zap.String("email", email))
	} else if res.ModifiedCount > 0 {
		logger.Info("promoted existing user to admin", zap.String("email", email))
	}
	return nil
}
