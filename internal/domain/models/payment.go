// internal/domain/models/payment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment types: what the checkout session was for.
const (
	PaymentTypeMembership = "membership"
	PaymentTypeEvent      = "event"
)

// Payment is one confirmed external checkout. TransactionID is the
// payment processor's payment-intent id and carries a unique index, so a
// second confirmation of the same session cannot create a second record.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TransactionID string             `bson:"transaction_id" json:"transactionId"`
	UserEmail     string             `bson:"user_email" json:"userEmail"`
	Type          string             `bson:"type" json:"type"` // "membership" | "event"
	ClubID        primitive.ObjectID `bson:"club_id,omitempty" json:"clubId,omitempty"`
	EventID       primitive.ObjectID `bson:"event_id,omitempty" json:"eventId,omitempty"`
	Amount        int64              `bson:"amount" json:"amount"` // minor units
	Currency      string             `bson:"currency" json:"currency"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
