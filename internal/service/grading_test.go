package service

import (
	"testing"

	"kambaz-backend/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func gradingQuiz() *models.Quiz {
	return &models.Quiz{
		ID:        "quiz1",
		Published: true,
		Points:    5,
		Questions: []models.Question{
			{
				ID:     "q1",
				Type:   models.QuestionMultipleChoice,
				Points: 2,
				Choices: []models.Choice{
					{ID: "c1", Text: "Paris", IsCorrect: true},
					{ID: "c2", Text: "London"},
				},
			},
			{
				ID:              "q2",
				Type:            models.QuestionFillInBlank,
				Points:          3,
				PossibleAnswers: []string{"Paris"},
			},
		},
	}
}

func TestGradeFullAndZeroScore(t *testing.T) {
	quiz := gradingQuiz()

	score, graded := Grade(quiz, []models.SubmittedAnswer{
		{QuestionID: "q1", Answer: "c1"},
		{QuestionID: "q2", Answer: "  paris "},
	})
	if score != 5 {
		t.Errorf("expected full score 5, got %d", score)
	}
	for _, g := range graded {
		if !g.IsCorrect {
			t.Errorf("expected answer for %s to be correct", g.QuestionID)
		}
	}

	score, graded = Grade(quiz, []models.SubmittedAnswer{
		{QuestionID: "q1", Answer: "c2"},
		{QuestionID: "q2", Answer: "London"},
	})
	if score != 0 {
		t.Errorf("expected zero score, got %d", score)
	}
	for _, g := range graded {
		if g.IsCorrect || g.PointsEarned != 0 {
			t.Errorf("expected answer for %s to earn nothing, got correct=%v points=%d", g.QuestionID, g.IsCorrect, g.PointsEarned)
		}
	}
}

func TestGradeFillInBlankMultiValue(t *testing.T) {
	question := &models.Question{
		ID:              "q1",
		Type:            models.QuestionFillInBlank,
		Points:          4,
		PossibleAnswers: []string{"red", "blue"},
	}
	quiz := &models.Quiz{ID: "quiz1", Questions: []models.Question{*question}}

	testCases := []struct {
		name    string
		answer  any
		correct bool
	}{
		{"case-insensitive positional match", []any{"Red", "Blue"}, true},
		{"wrong length", []any{"red"}, false},
		{"wrong order", []any{"blue", "red"}, false},
		{"whitespace trimmed", []any{" red ", "blue"}, true},
		{"single value against two blanks", "red", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, graded := Grade(quiz, []models.SubmittedAnswer{{QuestionID: "q1", Answer: tc.answer}})
			if len(graded) != 1 {
				t.Fatalf("expected 1 graded answer, got %d", len(graded))
			}
			if graded[0].IsCorrect != tc.correct {
				t.Errorf("expected correct=%v, got %v", tc.correct, graded[0].IsCorrect)
			}
			wantScore := 0
			if tc.correct {
				wantScore = 4
			}
			if score != wantScore {
				t.Errorf("expected score %d, got %d", wantScore, score)
			}
		})
	}
}

func TestGradeFillInBlankCaseSensitive(t *testing.T) {
	quiz := &models.Quiz{
		ID: "quiz1",
		Questions: []models.Question{{
			ID:              "q1",
			Type:            models.QuestionFillInBlank,
			Points:          1,
			PossibleAnswers: []string{"Go"},
			CaseSensitive:   true,
		}},
	}

	score, _ := Grade(quiz, []models.SubmittedAnswer{{QuestionID: "q1", Answer: "go"}})
	if score != 0 {
		t.Errorf("case-sensitive question accepted a lowercased answer, score %d", score)
	}
	score, _ = Grade(quiz, []models.SubmittedAnswer{{QuestionID: "q1", Answer: " Go "}})
	if score != 1 {
		t.Errorf("case-sensitive question should still trim whitespace, score %d", score)
	}
}

func TestGradeTrueFalse(t *testing.T) {
	quiz := &models.Quiz{
		ID: "quiz1",
		Questions: []models.Question{{
			ID:            "q1",
			Type:          models.QuestionTrueFalse,
			Points:        2,
			CorrectAnswer: boolPtr(true),
		}},
	}

	score, _ := Grade(quiz, []models.SubmittedAnswer{{QuestionID: "q1", Answer: true}})
	if score != 2 {
		t.Errorf("expected 2 points for the right boolean, got %d", score)
	}
	score, _ = Grade(quiz, []models.SubmittedAnswer{{QuestionID: "q1", Answer: false}})
	if score != 0 {
		t.Errorf("expected 0 points for the wrong boolean, got %d", score)
	}
	// A string where a bool is expected never matches.
	score, _ = Grade(quiz, []models.SubmittedAnswer{{QuestionID: "q1", Answer: "true"}})
	if score != 0 {
		t.Errorf("expected 0 points for a non-boolean answer, got %d", score)
	}
}

func TestGradeSkipsUnknownQuestions(t *testing.T) {
	quiz := gradingQuiz()
	score, graded := Grade(quiz, []models.SubmittedAnswer{
		{QuestionID: "missing", Answer: "c1"},
		{QuestionID: "q1", Answer: "c1"},
	})
	if len(graded) != 1 {
		t.Fatalf("expected the unknown question to be skipped, got %d graded answers", len(graded))
	}
	if score != 2 {
		t.Errorf("expected score 2, got %d", score)
	}
}
