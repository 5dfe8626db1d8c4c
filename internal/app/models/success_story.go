package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SuccessStory defines an alumni success story in the 'success_stories' collection
type SuccessStory struct {
	ID             bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Author         bson.ObjectID `json:"author" bson:"author"`
	Title          string        `json:"title" bson:"title"`
	Summary        string        `json:"summary,omitempty" bson:"summary,omitempty"`
	Content        string        `json:"content" bson:"content"`
	Role           string        `json:"role,omitempty" bson:"role,omitempty"`
	Company        string        `json:"company,omitempty" bson:"company,omitempty"`
	GraduationYear *int          `json:"graduationYear,omitempty" bson:"graduationYear,omitempty"`
	Tags           []string      `json:"tags,omitempty" bson:"tags,omitempty"`
	Featured       bool          `json:"featured" bson:"featured"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`

	AuthorRef *UserRef `json:"authorRef,omitempty" bson:"authorRef,omitempty"`
}
