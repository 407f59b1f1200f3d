package models

import "time"

const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionTrueFalse      = "true-false"
	QuestionFillInBlank    = "fill-in-blank"
)

type Choice struct {
	ID        string `bson:"_id,omitempty" json:"_id,omitempty"`
	Text      string `bson:"text" json:"text"`
	IsCorrect bool   `bson:"isCorrect" json:"isCorrect"`
}

type Question struct {
	ID              string   `bson:"_id,omitempty" json:"_id,omitempty"`
	Title           string   `bson:"title,omitempty" json:"title,omitempty"`
	Type            string   `bson:"type" json:"type"`
	Points          int      `bson:"points" json:"points"`
	Question        string   `bson:"question,omitempty" json:"question,omitempty"`
	Choices         []Choice `bson:"choices,omitempty" json:"choices,omitempty"`
	CorrectAnswer   *bool    `bson:"correctAnswer,omitempty" json:"correctAnswer,omitempty"`
	PossibleAnswers []string `bson:"possibleAnswers,omitempty" json:"possibleAnswers,omitempty"`
	CaseSensitive   bool     `bson:"caseSensitive,omitempty" json:"caseSensitive,omitempty"`
}

// CorrectChoice returns the single choice flagged correct, or nil.
func (q *Question) CorrectChoice() *Choice {
	for i := range q.Choices {
		if q.Choices[i].IsCorrect {
			return &q.Choices[i]
		}
	}
	return nil
}

type Quiz struct {
	ID                          string     `bson:"_id,omitempty" json:"_id"`
	Title                       string     `bson:"title" json:"title"`
	Description                 string     `bson:"description,omitempty" json:"description,omitempty"`
	Course                      string     `bson:"course" json:"course"`
	Published                   bool       `bson:"published" json:"published"`
	QuizType                    string     `bson:"quizType,omitempty" json:"quizType,omitempty"`
	Points                      int        `bson:"points" json:"points"`
	AssignmentGroup             string     `bson:"assignmentGroup,omitempty" json:"assignmentGroup,omitempty"`
	ShuffleAnswers              bool       `bson:"shuffleAnswers" json:"shuffleAnswers"`
	TimeLimit                   int        `bson:"timeLimit,omitempty" json:"timeLimit,omitempty"`
	MultipleAttempts            bool       `bson:"multipleAttempts" json:"multipleAttempts"`
	HowManyAttempts             int        `bson:"howManyAttempts" json:"howManyAttempts"`
	ShowCorrectAnswers          string     `bson:"showCorrectAnswers,omitempty" json:"showCorrectAnswers,omitempty"`
	AccessCode                  string     `bson:"accessCode,omitempty" json:"accessCode,omitempty"`
	OneQuestionAtTime           bool       `bson:"oneQuestionAtTime" json:"oneQuestionAtTime"`
	WebcamRequired              bool       `bson:"webcamRequired" json:"webcamRequired"`
	LockQuestionsAfterAnswering bool       `bson:"lockQuestionsAfterAnswering" json:"lockQuestionsAfterAnswering"`
	DueDate                     *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	AvailableDate               *time.Time `bson:"availableDate,omitempty" json:"availableDate,omitempty"`
	UntilDate                   *time.Time `bson:"untilDate,omitempty" json:"untilDate,omitempty"`
	Questions                   []Question `bson:"questions" json:"questions"`
	CreatedAt                   time.Time  `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt                   time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// QuestionByID locates an embedded question, or nil when absent.
func (qz *Quiz) QuestionByID(id string) *Question {
	for i := range qz.Questions {
		if qz.Questions[i].ID == id {
			return &qz.Questions[i]
		}
	}
	return nil
}

// TotalQuestionPoints sums the point values of all embedded questions. The
// stored quiz total is always recomputed from this, never trusted from the
// client.
func (qz *Quiz) TotalQuestionPoints() int {
	total := 0
	for i := range qz.Questions {
		total += qz.Questions[i].Points
	}
	return total
}
