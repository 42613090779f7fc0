// internal/domain/models/wing.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wing is a grouping of clubs (e.g. "Sports", "Cultural").
type Wing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
}
