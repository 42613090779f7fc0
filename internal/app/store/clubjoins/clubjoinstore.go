// internal/app/store/clubjoins/clubjoinstore.go
package clubjoinstore

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
	return &Store{c: db.Collection("club_joins")}
}

// Insert creates a free-join record. No uniqueness is enforced here;
// double submissions can create duplicate records (the reconciler
// collapses them on read).
func (s *Store) Insert(ctx context.Context, join models.ClubJoin) (models.ClubJoin, error) {
	if join.ID.IsZero() {
		join.ID = primitive.NewObjectID()
	}
	if join.JoinedAt.IsZero() {
		join.JoinedAt = time.Now().UTC()
	}
	if join.Status == "" {
		join.Status = models.JoinStatusActive
	}
	_, err := s.c.InsertOne(ctx, join)
	return join, err
}

// Upsert merges a join record keyed on (user_email, club_id): an
// existing record gets its status refreshed, a missing one is created.
// Used by payment confirmation so re-confirms never append.
func (s *Store) Upsert(ctx context.Context, userEmail string, clubID primitive.ObjectID, status string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_email": userEmail, "club_id": clubID},
		bson.M{
			"$set":         bson.M{"status": status},
			"$setOnInsert": bson.M{"joined_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true))
	return err
}

// ListByUser returns all join records for one user.
func (s *Store) ListByUser(ctx context.Context, userEmail string) ([]models.ClubJoin, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var joins []models.ClubJoin
	if err := cur.All(ctx, &joins); err != nil {
		return nil, err
	}
	return joins, nil
}

// Remove deletes the join records for (user_email, club_id).
// Returns the number of documents deleted.
func (s *Store) Remove(ctx context.Context, userEmail string, clubID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_email": userEmail, "club_id": clubID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
