package models

type Lesson struct {
	ID          string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Module      string `bson:"module,omitempty" json:"module,omitempty"`
}

// Module is an ordered content unit scoped to one course. Modules are
// addressable by their generated id or by name, so name doubles as a key.
type Module struct {
	ID          string   `bson:"_id,omitempty" json:"_id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Course      string   `bson:"course" json:"course"`
	Lessons     []Lesson `bson:"lessons,omitempty" json:"lessons,omitempty"`
}
