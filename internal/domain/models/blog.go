// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a seed-managed post shown on the public site.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	Content     string             `bson:"content" json:"content"`
	PublishedAt time.Time          `bson:"published_at" json:"publishedAt"`
}
