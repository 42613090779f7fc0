// internal/domain/models/join.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Join status values.
const (
	JoinStatusActive     = "active"
	JoinStatusRegistered = "registered"
)

// ClubJoin is a direct (free) club membership record. Paid memberships
// produce the same record via the payment-confirmation upsert, so one
// document per (user_email, club_id) is the steady state either way.
type ClubJoin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail string             `bson:"user_email" json:"userEmail"`
	ClubID    primitive.ObjectID `bson:"club_id" json:"clubId"`
	JoinedAt  time.Time          `bson:"joined_at" json:"joinedAt"`
	Status    string             `bson:"status" json:"status"`
}

// EventJoin is an event registration record.
type EventJoin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail    string             `bson:"user_email" json:"userEmail"`
	EventID      primitive.ObjectID `bson:"event_id" json:"eventId"`
	RegisteredAt time.Time          `bson:"registered_at" json:"registeredAt"`
	Status       string             `bson:"status" json:"status"`
}
