package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EventAudience restricts which roles an event targets
type EventAudience string

const (
	AudienceAll     EventAudience = "all"
	AudienceStudent EventAudience = "student"
	AudienceAlumni  EventAudience = "alumni"
)

// Event defines an institution event in the 'events' collection
type Event struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	StartDate   time.Time     `json:"startDate" bson:"startDate"`
	EndDate     *time.Time    `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Location    string        `json:"location" bson:"location"`
	Tags        []string      `json:"tags,omitempty" bson:"tags,omitempty"`
	Audience    EventAudience `json:"audience" bson:"audience"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	CreatedBy   bson.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`

	Creator *UserRef `json:"creator,omitempty" bson:"creator,omitempty"`
}
