package service

import (
	"context"
	"testing"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository/memory"
)

func newQuizFixture() (*QuizService, *memory.QuizStore, *memory.AttemptStore) {
	quizzes := memory.NewQuizStore()
	attempts := memory.NewAttemptStore()
	return NewQuizService(quizzes, attempts), quizzes, attempts
}

func TestCreateQuizAppliesDefaults(t *testing.T) {
	svc, _, _ := newQuizFixture()
	quiz, err := svc.CreateQuiz(context.Background(), "course1", &models.Quiz{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if quiz.ID == "" {
		t.Error("expected a generated id")
	}
	if quiz.Course != "course1" {
		t.Errorf("expected course1, got %q", quiz.Course)
	}
	if quiz.Title != "Untitled Quiz" {
		t.Errorf("expected default title, got %q", quiz.Title)
	}
	if quiz.HowManyAttempts != 1 {
		t.Errorf("expected default attempt limit 1, got %d", quiz.HowManyAttempts)
	}
}

func TestUpdateQuizRecomputesPoints(t *testing.T) {
	svc, _, _ := newQuizFixture()
	ctx := context.Background()
	created, err := svc.CreateQuiz(ctx, "course1", &models.Quiz{Title: "Exam"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The client claims 100 points; the server must sum the questions.
	update := &models.Quiz{
		Title:  "Exam",
		Points: 100,
		Questions: []models.Question{
			{Type: models.QuestionMultipleChoice, Points: 2},
			{Type: models.QuestionFillInBlank, Points: 3},
		},
	}
	updated, err := svc.UpdateQuiz(ctx, created.ID, update)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Points != 5 {
		t.Errorf("expected recomputed points 5, got %d", updated.Points)
	}
	for _, q := range updated.Questions {
		if q.ID == "" {
			t.Error("expected every question to receive an id")
		}
	}
}

func TestUpdateMissingQuizReturnsNil(t *testing.T) {
	svc, _, _ := newQuizFixture()
	updated, err := svc.UpdateQuiz(context.Background(), "ghost", &models.Quiz{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for a missing quiz")
	}
}

func TestDeleteQuizCascadesToAttempts(t *testing.T) {
	svc, _, attempts := newQuizFixture()
	ctx := context.Background()
	quiz, err := svc.CreateQuiz(ctx, "course1", &models.Quiz{Published: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 1; i <= 2; i++ {
		err := attempts.Create(ctx, &models.QuizAttempt{
			ID: "a" + string(rune('0'+i)), Quiz: quiz.ID, Student: "student1", AttemptNumber: i, Submitted: true,
		})
		if err != nil {
			t.Fatalf("seed attempt: %v", err)
		}
	}

	deleted, err := svc.DeleteQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected quiz to be reported deleted")
	}
	remaining, err := attempts.FindForStudent(ctx, quiz.ID, "student1")
	if err != nil {
		t.Fatalf("find attempts: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no surviving attempts, got %d", len(remaining))
	}
}

func TestTogglePublishFlips(t *testing.T) {
	svc, quizzes, _ := newQuizFixture()
	ctx := context.Background()
	quiz, err := svc.CreateQuiz(ctx, "course1", &models.Quiz{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.TogglePublish(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Published {
		t.Error("expected quiz to be published after first toggle")
	}
	stored, _ := quizzes.FindByID(ctx, quiz.ID)
	if !stored.Published {
		t.Error("expected the published flag to be persisted")
	}

	toggled, err = svc.TogglePublish(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if toggled.Published {
		t.Error("expected quiz to be unpublished after second toggle")
	}
}

func TestListForCourseFiltersForStudents(t *testing.T) {
	svc, _, _ := newQuizFixture()
	ctx := context.Background()
	if _, err := svc.CreateQuiz(ctx, "course1", &models.Quiz{Title: "Visible", Published: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateQuiz(ctx, "course1", &models.Quiz{Title: "Draft"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.ListForCourse(ctx, "course1", models.RoleFaculty)
	if err != nil {
		t.Fatalf("faculty list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("faculty should see both quizzes, got %d", len(all))
	}

	visible, err := svc.ListForCourse(ctx, "course1", models.RoleStudent)
	if err != nil {
		t.Fatalf("student list: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Visible" {
		t.Errorf("student should only see the published quiz, got %v", visible)
	}
}
