package models

import "time"

// SubmittedAnswer is one answer as posted by a student. Answer is a string
// for multiple-choice, a bool for true-false, and a string or list of
// strings for fill-in-blank.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     any    `json:"answer"`
}

type GradedAnswer struct {
	QuestionID   string `bson:"questionId" json:"questionId"`
	Answer       any    `bson:"answer" json:"answer"`
	IsCorrect    bool   `bson:"isCorrect" json:"isCorrect"`
	PointsEarned int    `bson:"pointsEarned" json:"pointsEarned"`
}

// QuizAttempt is one graded submission of a quiz by a student. Attempt
// numbers are 1-based and unique per (quiz, student); the record is written
// once, after grading, and never updated.
type QuizAttempt struct {
	ID            string         `bson:"_id,omitempty" json:"_id"`
	Quiz          string         `bson:"quiz" json:"quiz"`
	Student       string         `bson:"student" json:"student"`
	AttemptNumber int            `bson:"attemptNumber" json:"attemptNumber"`
	Answers       []GradedAnswer `bson:"answers" json:"answers"`
	Score         int            `bson:"score" json:"score"`
	TotalPoints   int            `bson:"totalPoints" json:"totalPoints"`
	Submitted     bool           `bson:"submitted" json:"submitted"`
	SubmittedAt   time.Time      `bson:"submittedAt" json:"submittedAt"`
	CreatedAt     time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
