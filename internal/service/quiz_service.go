package service

import (
	"context"
	"time"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"

	"github.com/google/uuid"
)

type QuizService struct {
	Repo     repository.QuizStore
	Attempts repository.AttemptStore
}

func NewQuizService(repo repository.QuizStore, attempts repository.AttemptStore) *QuizService {
	return &QuizService{Repo: repo, Attempts: attempts}
}

// ListForCourse returns all quizzes for the course; students only see
// published ones.
func (s *QuizService) ListForCourse(ctx context.Context, courseID, role string) ([]models.Quiz, error) {
	quizzes, err := s.Repo.FindForCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleStudent {
		return quizzes, nil
	}
	published := []models.Quiz{}
	for _, q := range quizzes {
		if q.Published {
			published = append(published, q)
		}
	}
	return published, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuizService) CreateQuiz(ctx context.Context, courseID string, quiz *models.Quiz) (*models.Quiz, error) {
	quiz.Course = courseID
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	applyQuizDefaults(quiz)
	ensureQuestionIDs(quiz)
	now := time.Now()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// UpdateQuiz replaces the quiz with the submitted body. The points total is
// recomputed from the question list so a client-supplied total can never
// inflate the quiz.
func (s *QuizService) UpdateQuiz(ctx context.Context, id string, quiz *models.Quiz) (*models.Quiz, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	quiz.ID = existing.ID
	if quiz.Course == "" {
		quiz.Course = existing.Course
	}
	quiz.CreatedAt = existing.CreatedAt
	quiz.UpdatedAt = time.Now()
	quiz.Points = quiz.TotalQuestionPoints()
	ensureQuestionIDs(quiz)
	if err := s.Repo.Replace(ctx, id, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz removes the quiz and every attempt recorded against it. The
// returned bool reports whether the quiz existed.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) (bool, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if quiz == nil {
		return false, nil
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return false, err
	}
	if err := s.Attempts.DeleteByQuiz(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *QuizService) TogglePublish(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, nil
	}
	quiz.Published = !quiz.Published
	if err := s.Repo.SetPublished(ctx, id, quiz.Published); err != nil {
		return nil, err
	}
	return quiz, nil
}

func applyQuizDefaults(quiz *models.Quiz) {
	if quiz.Title == "" {
		quiz.Title = "Untitled Quiz"
	}
	if quiz.QuizType == "" {
		quiz.QuizType = "graded-quiz"
	}
	if quiz.AssignmentGroup == "" {
		quiz.AssignmentGroup = "quizzes"
	}
	if quiz.TimeLimit == 0 {
		quiz.TimeLimit = 20
	}
	if quiz.HowManyAttempts == 0 {
		quiz.HowManyAttempts = 1
	}
	if quiz.ShowCorrectAnswers == "" {
		quiz.ShowCorrectAnswers = "immediately"
	}
}

// ensureQuestionIDs assigns ids to embedded questions and choices that come
// in without one, so answers can reference them.
func ensureQuestionIDs(quiz *models.Quiz) {
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		for j := range q.Choices {
			if q.Choices[j].ID == "" {
				q.Choices[j].ID = uuid.NewString()
			}
		}
	}
}
