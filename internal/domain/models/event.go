// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a one-off happening users can register for.
// Participants is a plain counter incremented on each registration.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Wing         string             `bson:"wing" json:"wing"`
	Description  string             `bson:"description" json:"description"`
	Fee          int64              `bson:"fee" json:"fee"`
	Currency     string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	Participants int                `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
