// internal/app/store/payments/paymentstore.go
package paymentstore

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

// ErrDuplicateTransaction means a payment record for this
// transaction_id already exists. The unique index on transaction_id is
// what actually enforces this, so concurrent duplicate confirms
// collapse here instead of double-inserting.
var ErrDuplicateTransaction = errors.New("payment already recorded for this transaction")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("payments")}
}

// Insert records a confirmed payment. Returns ErrDuplicateTransaction
// when the transaction_id is already present.
func (s *Store) Insert(ctx context.Context, p models.Payment) (models.Payment, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Payment{}, ErrDuplicateTransaction
		}
		return models.Payment{}, err
	}
	return p, nil
}

// FindByTransactionID returns the payment for one transaction.
// mongo.ErrNoDocuments when absent.
func (s *Store) FindByTransactionID(ctx context.Context, transactionID string) (models.Payment, error) {
	var p models.Payment
	err := s.c.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&p)
	return p, err
}

// ListByUser returns all payments for one user, optionally filtered by
// type ("membership" or "event"). Empty paymentType returns all.
func (s *Store) ListByUser(ctx context.Context, userEmail, paymentType string) ([]models.Payment, error) {
	filter := bson.M{"user_email": userEmail}
	if paymentType != "" {
		filter["type"] = paymentType
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
