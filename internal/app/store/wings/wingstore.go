// internal/app/store/wings/wingstore.go
package wingstore

import (
	"context"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("wings")}
}

// List returns all wings.
func (s *Store) List(ctx context.Context) ([]models.Wing, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var wings []models.Wing
	if err := cur.All(ctx, &wings); err != nil {
		return nil, err
	}
	return wings, nil
}
