// internal/domain/models/memberrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberRequest is a pending ask for a role change. At most one exists
// per email (unique index); actioning it deletes the document.
type MemberRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	Role        string             `bson:"role" json:"role"` // requested role
	RequestedAt time.Time          `bson:"requested_at" json:"requestedAt"`
}
