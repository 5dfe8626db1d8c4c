package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// Roles lists every valid role value.
var Roles = []Role{RoleStudent, RoleAlumni, RoleAdmin}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User defines the user model stored in the 'users' collection
type User struct {
	ID             bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string        `json:"name" bson:"name"`
	Email          string        `json:"email" bson:"email"`
	Password       string        `json:"-" bson:"password"` // bcrypt hash, excluded from JSON
	Role           Role          `json:"role" bson:"role"`
	CollegeID      string        `json:"collegeId" bson:"collegeId"`
	GraduationYear *int          `json:"graduationYear,omitempty" bson:"graduationYear,omitempty"`
	IsApproved     bool          `json:"isApproved" bson:"isApproved"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`
}
