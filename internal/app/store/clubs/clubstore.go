// internal/app/store/clubs/clubstore.go
package clubstore

import (
	"context"

	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clubs")}
}

// List returns all clubs.
func (s *Store) List(ctx context.Context) ([]models.Club, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var clubs []models.Club
	if err := cur.All(ctx, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// GetByID returns one club. mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Club, error) {
	var club models.Club
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&club)
	return club, err
}

// MergeMember writes a member entry into the club's member list.
// An existing entry for the same email is updated in place; otherwise
// the entry is appended. Re-confirming a payment therefore never
// duplicates the member row.
func (s *Store) MergeMember(ctx context.Context, clubID primitive.ObjectID, m models.ClubMember) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": clubID, "members.user_email": m.UserEmail},
		bson.M{"$set": bson.M{
			"members.$.status":         m.Status,
			"members.$.payment_id":     m.PaymentID,
			"members.$.transaction_id": m.TransactionID,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": clubID},
		bson.M{"$push": bson.M{"members": m}})
	return err
}

// RemoveMember deletes a user's entry from the club's member list.
func (s *Store) RemoveMember(ctx context.Context, clubID primitive.ObjectID, userEmail string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": clubID},
		bson.M{"$pull": bson.M{"members": bson.M{"user_email": userEmail}}})
	return err
}
