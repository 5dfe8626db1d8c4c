package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MentorshipPost defines a mentorship offer in the 'mentorship_posts' collection
type MentorshipPost struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	CreatedBy   bson.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`

	Creator *UserRef `json:"creator,omitempty" bson:"creator,omitempty"`
}
