// internal/domain/models/faq.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FAQ is a seed-managed help entry.
type FAQ struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
	Order    int                `bson:"order" json:"order"`
}
