// internal/app/store/requests/requeststore.go
package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPendingExists means the email already has an unactioned request.
// Backed by the unique index on member_requests.email.
var ErrPendingExists = errors.New("a membership request is already pending for this email")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("member_requests")}
}

// Create files a new request. Returns ErrPendingExists while a request
// for the same email is still pending.
func (s *Store) Create(ctx context.Context, req models.MemberRequest) (models.MemberRequest, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, req)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.MemberRequest{}, ErrPendingExists
		}
		return models.MemberRequest{}, err
	}
	return req, nil
}

// List returns all pending requests.
func (s *Store) List(ctx context.Context) ([]models.MemberRequest, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var requests []models.MemberRequest
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// DeleteByEmail removes the pending request for an email.
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
