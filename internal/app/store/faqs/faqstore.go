// internal/app/store/faqs/faqstore.go
package faqstore

import (
	"context"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("faqs")}
}

// List returns all FAQs in display order.
func (s *Store) List(ctx context.Context) ([]models.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var faqs []models.FAQ
	if err := cur.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}
