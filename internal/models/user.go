package models

import "time"

const (
	RoleStudent = "STUDENT"
	RoleFaculty = "FACULTY"
	RoleAdmin   = "ADMIN"
	RoleUser    = "USER"
)

type User struct {
	ID            string    `bson:"_id,omitempty" json:"_id"`
	Username      string    `bson:"username" json:"username"`
	Password      string    `bson:"password" json:"-"`
	FirstName     string    `bson:"firstName" json:"firstName"`
	LastName      string    `bson:"lastName" json:"lastName"`
	Email         string    `bson:"email" json:"email"`
	DOB           string    `bson:"dob,omitempty" json:"dob,omitempty"`
	Role          string    `bson:"role" json:"role"`
	LoginID       string    `bson:"loginId,omitempty" json:"loginId,omitempty"`
	Section       string    `bson:"section,omitempty" json:"section,omitempty"`
	LastActivity  string    `bson:"lastActivity,omitempty" json:"lastActivity,omitempty"`
	TotalActivity string    `bson:"totalActivity,omitempty" json:"totalActivity,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HasRole reports whether the user's role is one of the given roles.
func (u *User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
