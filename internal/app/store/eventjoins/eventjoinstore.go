// internal/app/store/eventjoins/eventjoinstore.go
package eventjoinstore

import (
	"context"
	"time"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("event_joins")}
}

// Insert creates an event registration record.
func (s *Store) Insert(ctx context.Context, join models.EventJoin) (models.EventJoin, error) {
	if join.ID.IsZero() {
		join.ID = primitive.NewObjectID()
	}
	if join.RegisteredAt.IsZero() {
		join.RegisteredAt = time.Now().UTC()
	}
	if join.Status == "" {
		join.Status = models.JoinStatusRegistered
	}
	_, err := s.c.InsertOne(ctx, join)
	return join, err
}

// Upsert merges a registration keyed on (user_email, event_id) and
// reports whether a new document was inserted. Used by payment
// confirmation so re-confirms never append; the inserted flag tells
// the caller whether the user was already registered through the free
// flow.
func (s *Store) Upsert(ctx context.Context, userEmail string, eventID primitive.ObjectID, status string) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"user_email": userEmail, "event_id": eventID},
		bson.M{
			"$set":         bson.M{"status": status},
			"$setOnInsert": bson.M{"registered_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// ListByUser returns all registrations for one user.
func (s *Store) ListByUser(ctx context.Context, userEmail string) ([]models.EventJoin, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var joins []models.EventJoin
	if err := cur.All(ctx, &joins); err != nil {
		return nil, err
	}
	return joins, nil
}
