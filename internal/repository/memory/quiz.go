package memory

import (
	"context"
	"sort"
	"sync"

	"kambaz-backend/internal/models"
)

type QuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]models.Quiz
}

func NewQuizStore() *QuizStore {
	return &QuizStore{quizzes: make(map[string]models.Quiz)}
}

func (s *QuizStore) FindForCourse(ctx context.Context, courseID string) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var quizzes []models.Quiz
	for _, q := range s.quizzes {
		if q.Course == courseID {
			quizzes = append(quizzes, q)
		}
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].CreatedAt.After(quizzes[j].CreatedAt) })
	return quizzes, nil
}

func (s *QuizStore) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if q, ok := s.quizzes[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (s *QuizStore) Create(ctx context.Context, quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[quiz.ID] = *quiz
	return nil
}

func (s *QuizStore) Replace(ctx context.Context, id string, quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[id]; ok {
		s.quizzes[id] = *quiz
	}
	return nil
}

func (s *QuizStore) SetPublished(ctx context.Context, id string, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok := s.quizzes[id]; ok {
		q.Published = published
		s.quizzes[id] = q
	}
	return nil
}

func (s *QuizStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, id)
	return nil
}
