package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SkillLevel grades a skill entry
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Skill is an embedded profile skill entry
type Skill struct {
	Name  string     `json:"name" bson:"name"`
	Level SkillLevel `json:"level" bson:"level"`
}

// Certification is an embedded profile certification entry
type Certification struct {
	Name   string `json:"name" bson:"name"`
	Issuer string `json:"issuer,omitempty" bson:"issuer,omitempty"`
	Year   string `json:"year,omitempty" bson:"year,omitempty"`
}

// Experience is an embedded profile work-experience entry
type Experience struct {
	Title       string         `json:"title,omitempty" bson:"title,omitempty"`
	Company     string         `json:"company,omitempty" bson:"company,omitempty"`
	Type        EmploymentType `json:"type,omitempty" bson:"type,omitempty"`
	StartDate   string         `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
}

// Socials holds profile social links
type Socials struct {
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" bson:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty" bson:"twitter,omitempty"`
}

// Profile defines the extended user profile in the 'profiles' collection.
// Exactly one profile exists per user; it is created lazily on first read.
type Profile struct {
	ID             bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	User           bson.ObjectID   `json:"user" bson:"user"`
	Headline       string          `json:"headline,omitempty" bson:"headline,omitempty"`
	Bio            string          `json:"bio,omitempty" bson:"bio,omitempty"`
	Department     string          `json:"department,omitempty" bson:"department,omitempty"`
	GraduationYear *int            `json:"graduationYear,omitempty" bson:"graduationYear,omitempty"`
	CurrentRole    string          `json:"currentRole,omitempty" bson:"currentRole,omitempty"`
	Company        string          `json:"company,omitempty" bson:"company,omitempty"`
	Location       string          `json:"location,omitempty" bson:"location,omitempty"`
	Phone          string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Socials        *Socials        `json:"socials,omitempty" bson:"socials,omitempty"`
	Skills         []Skill         `json:"skills,omitempty" bson:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty" bson:"certifications,omitempty"`
	Experience     []Experience    `json:"experience,omitempty" bson:"experience,omitempty"`
	Interests      []string        `json:"interests,omitempty" bson:"interests,omitempty"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}
