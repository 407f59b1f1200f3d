package service

import (
	"context"
	"time"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"

	"github.com/google/uuid"
)

type AttemptService struct {
	Repo    repository.AttemptStore
	Quizzes repository.QuizStore
}

func NewAttemptService(repo repository.AttemptStore, quizzes repository.QuizStore) *AttemptService {
	return &AttemptService{Repo: repo, Quizzes: quizzes}
}

func (s *AttemptService) ListForStudent(ctx context.Context, quizID, studentID string) ([]models.QuizAttempt, error) {
	return s.Repo.FindForStudent(ctx, quizID, studentID)
}

// Submit grades the answers and records one immutable attempt. The record is
// built entirely in memory and written with a single insert, so a grading
// failure never leaves a partial attempt behind. Gate order: quiz exists,
// quiz published, attempt limit not reached.
func (s *AttemptService) Submit(ctx context.Context, quizID, studentID string, answers []models.SubmittedAnswer) (*models.QuizAttempt, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	if !quiz.Published {
		return nil, ErrQuizNotAvailable
	}

	existing, err := s.Repo.CountSubmitted(ctx, quizID, studentID)
	if err != nil {
		return nil, err
	}
	if existing >= quiz.HowManyAttempts {
		return nil, ErrAttemptLimitReached
	}

	score, graded := Grade(quiz, answers)

	attempt := &models.QuizAttempt{
		ID:            uuid.NewString(),
		Quiz:          quizID,
		Student:       studentID,
		AttemptNumber: existing + 1,
		Answers:       graded,
		Score:         score,
		TotalPoints:   quiz.Points,
		Submitted:     true,
		SubmittedAt:   time.Now(),
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}
