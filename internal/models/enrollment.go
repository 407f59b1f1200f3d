package models

// Enrollment links one user to one course. Uniqueness of the pair is the
// caller's responsibility; the store does not constrain it.
type Enrollment struct {
	ID     string `bson:"_id,omitempty" json:"_id"`
	User   string `bson:"user" json:"user"`
	Course string `bson:"course" json:"course"`
}
