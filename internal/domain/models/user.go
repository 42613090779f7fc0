// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is a profile keyed by email (unique index). It is upserted on
// every login: the first write sets Role and CreatedAt, later writes
// only refresh LastLoggedIn.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	LastLoggedIn time.Time          `bson:"last_logged_in" json:"last_loggedIn"`
}
