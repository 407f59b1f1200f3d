package models

type Course struct {
	ID          string `bson:"_id,omitempty" json:"_id"`
	Name        string `bson:"name" json:"name"`
	Number      string `bson:"number,omitempty" json:"number,omitempty"`
	StartDate   string `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     string `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Department  string `bson:"department,omitempty" json:"department,omitempty"`
	Credits     int    `bson:"credits,omitempty" json:"credits,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}
