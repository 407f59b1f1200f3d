package service

import (
	"context"
	"errors"
	"testing"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository/memory"
)

func newAttemptFixture(t *testing.T, quiz *models.Quiz) (*AttemptService, *memory.AttemptStore) {
	t.Helper()
	quizzes := memory.NewQuizStore()
	if quiz != nil {
		if err := quizzes.Create(context.Background(), quiz); err != nil {
			t.Fatalf("seeding quiz: %v", err)
		}
	}
	attempts := memory.NewAttemptStore()
	return NewAttemptService(attempts, quizzes), attempts
}

func TestSubmitNumbersAttemptsSequentially(t *testing.T) {
	quiz := gradingQuiz()
	quiz.HowManyAttempts = 3
	svc, _ := newAttemptFixture(t, quiz)
	ctx := context.Background()

	answers := []models.SubmittedAnswer{{QuestionID: "q1", Answer: "c1"}}
	for want := 1; want <= 3; want++ {
		attempt, err := svc.Submit(ctx, "quiz1", "student1", answers)
		if err != nil {
			t.Fatalf("submit %d: %v", want, err)
		}
		if attempt.AttemptNumber != want {
			t.Errorf("expected attempt number %d, got %d", want, attempt.AttemptNumber)
		}
		if !attempt.Submitted {
			t.Error("attempt should be recorded as submitted")
		}
		if attempt.TotalPoints != quiz.Points {
			t.Errorf("expected total points snapshot %d, got %d", quiz.Points, attempt.TotalPoints)
		}
	}
}

func TestSubmitEnforcesAttemptLimit(t *testing.T) {
	quiz := gradingQuiz()
	quiz.HowManyAttempts = 1
	svc, _ := newAttemptFixture(t, quiz)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "quiz1", "student1", nil); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := svc.Submit(ctx, "quiz1", "student1", nil)
	if !errors.Is(err, ErrAttemptLimitReached) {
		t.Errorf("expected ErrAttemptLimitReached, got %v", err)
	}

	// A different student on the same quiz is unaffected.
	if _, err := svc.Submit(ctx, "quiz1", "student2", nil); err != nil {
		t.Errorf("other student's first submit: %v", err)
	}
}

func TestSubmitRejectsMissingOrUnpublishedQuiz(t *testing.T) {
	svc, _ := newAttemptFixture(t, nil)
	if _, err := svc.Submit(context.Background(), "ghost", "student1", nil); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("expected ErrQuizNotFound, got %v", err)
	}

	quiz := gradingQuiz()
	quiz.Published = false
	svc, _ = newAttemptFixture(t, quiz)
	if _, err := svc.Submit(context.Background(), "quiz1", "student1", nil); !errors.Is(err, ErrQuizNotAvailable) {
		t.Errorf("expected ErrQuizNotAvailable, got %v", err)
	}
}

func TestListForStudentNewestFirst(t *testing.T) {
	quiz := gradingQuiz()
	quiz.HowManyAttempts = 2
	svc, _ := newAttemptFixture(t, quiz)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(ctx, "quiz1", "student1", nil); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	attempts, err := svc.ListForStudent(ctx, "quiz1", "student1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].AttemptNumber != 2 || attempts[1].AttemptNumber != 1 {
		t.Errorf("expected newest attempt first, got order %d, %d", attempts[0].AttemptNumber, attempts[1].AttemptNumber)
	}
}
