// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"strings"
	"time"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// UpsertLogin records a login for the given identity. The first write
// creates the profile with role "member" and a creation timestamp;
// every later write only refreshes last_logged_in (and the display
// name, which the provider owns). Returns the post-update profile.
func (s *Store) UpsertLogin(ctx context.Context, email, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":           name,
			"last_logged_in": now,
		},
		"$setOnInsert": bson.M{
			"email":      email,
			"role":       models.RoleMember,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user)
	return user, err
}

// RoleByEmail returns the user's role. mongo.ErrNoDocuments when the
// profile does not exist.
func (s *Store) RoleByEmail(ctx context.Context, email string) (string, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	opts := options.FindOne().SetProjection(bson.M{"role": 1})
	err := s.c.FindOne(ctx, bson.M{"email": strings.ToLower(email)}, opts).Decode(&doc)
	if err != nil {
		return "", err
	}
	return doc.Role, nil
}

// List returns all user profiles.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole sets the user's role. mongo.ErrNoDocuments when the
// profile does not exist.
func (s *Store) UpdateRole(ctx context.Context, email, role string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": strings.ToLower(email)},
		bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
