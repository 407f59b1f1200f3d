package models

type Assignment struct {
	ID                 string `bson:"_id,omitempty" json:"_id"`
	Title              string `bson:"title" json:"title"`
	Course             string `bson:"course" json:"course"`
	Description        string `bson:"description,omitempty" json:"description,omitempty"`
	Points             int    `bson:"points,omitempty" json:"points,omitempty"`
	DueDate            string `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	AvailableFromDate  string `bson:"availableFromDate,omitempty" json:"availableFromDate,omitempty"`
	AvailableUntilDate string `bson:"availableUntilDate,omitempty" json:"availableUntilDate,omitempty"`
}
