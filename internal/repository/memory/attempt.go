package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"kambaz-backend/internal/models"
)

type AttemptStore struct {
	mu       sync.RWMutex
	attempts []models.QuizAttempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{}
}

func (s *AttemptStore) FindForStudent(ctx context.Context, quizID, studentID string) ([]models.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var attempts []models.QuizAttempt
	for _, a := range s.attempts {
		if a.Quiz == quizID && a.Student == studentID {
			attempts = append(attempts, a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].AttemptNumber > attempts[j].AttemptNumber })
	return attempts, nil
}

func (s *AttemptStore) CountSubmitted(ctx context.Context, quizID, studentID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, a := range s.attempts {
		if a.Quiz == quizID && a.Student == studentID && a.Submitted {
			count++
		}
	}
	return count, nil
}

// Create rejects a duplicate (quiz, student, attemptNumber) triple the same
// way the unique Mongo index does.
func (s *AttemptStore) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.attempts {
		if a.Quiz == attempt.Quiz && a.Student == attempt.Student && a.AttemptNumber == attempt.AttemptNumber {
			return fmt.Errorf("duplicate attempt %d for quiz %s student %s", attempt.AttemptNumber, attempt.Quiz, attempt.Student)
		}
	}
	s.attempts = append(s.attempts, *attempt)
	return nil
}

func (s *AttemptStore) DeleteByQuiz(ctx context.Context, quizID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.attempts[:0]
	for _, a := range s.attempts {
		if a.Quiz != quizID {
			kept = append(kept, a)
		}
	}
	s.attempts = kept
	return nil
}
