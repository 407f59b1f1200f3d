package service

import (
	"strings"

	"kambaz-backend/internal/models"
)

// Grade scores a set of submitted answers against a quiz's embedded
// questions. Answers referencing unknown questions are skipped. A correct
// answer earns the question's full point value, anything else earns zero.
func Grade(quiz *models.Quiz, answers []models.SubmittedAnswer) (int, []models.GradedAnswer) {
	score := 0
	graded := []models.GradedAnswer{}
	for _, answer := range answers {
		question := quiz.QuestionByID(answer.QuestionID)
		if question == nil {
			continue
		}
		correct := isCorrect(question, answer.Answer)
		earned := 0
		if correct {
			earned = question.Points
			score += earned
		}
		graded = append(graded, models.GradedAnswer{
			QuestionID:   answer.QuestionID,
			Answer:       answer.Answer,
			IsCorrect:    correct,
			PointsEarned: earned,
		})
	}
	return score, graded
}

func isCorrect(question *models.Question, answer any) bool {
	switch question.Type {
	case models.QuestionMultipleChoice:
		choice := question.CorrectChoice()
		if choice == nil {
			return false
		}
		submitted, ok := answer.(string)
		return ok && submitted == choice.ID
	case models.QuestionTrueFalse:
		if question.CorrectAnswer == nil {
			return false
		}
		submitted, ok := answer.(bool)
		return ok && submitted == *question.CorrectAnswer
	case models.QuestionFillInBlank:
		return matchBlanks(question, answer)
	}
	return false
}

// matchBlanks compares a fill-in-blank submission positionally against the
// question's possible answers. A single value counts as a one-element list.
// Both sides are whitespace-trimmed, and lowercased unless the question is
// case-sensitive. Length must match exactly: a missing or extra blank fails
// the whole question.
func matchBlanks(question *models.Question, answer any) bool {
	var submitted []string
	switch v := answer.(type) {
	case string:
		submitted = []string{v}
	case []string:
		submitted = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return false
			}
			submitted = append(submitted, s)
		}
	default:
		return false
	}

	if len(submitted) != len(question.PossibleAnswers) {
		return false
	}
	for i := range submitted {
		got := strings.TrimSpace(submitted[i])
		want := strings.TrimSpace(question.PossibleAnswers[i])
		if !question.CaseSensitive {
			got = strings.ToLower(got)
			want = strings.ToLower(want)
		}
		if got != want {
			return false
		}
	}
	return true
}
