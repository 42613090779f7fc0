// internal/domain/models/club.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Club is a joinable club. Members holds the per-user entries that were
// merged in when a join was confirmed (free or paid).
type Club struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Wing        string             `bson:"wing" json:"wing"`
	Description string             `bson:"description" json:"description"`
	Fee         int64              `bson:"fee" json:"fee"` // minor units; 0 means free to join
	Currency    string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Members     []ClubMember       `bson:"members,omitempty" json:"members,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// ClubMember is one entry in a club's member list.
type ClubMember struct {
	UserEmail     string             `bson:"user_email" json:"userEmail"`
	JoinedAt      time.Time          `bson:"joined_at" json:"joinedAt"`
	Status        string             `bson:"status" json:"status"` // "active" | "pending"
	PaymentID     primitive.ObjectID `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
}
