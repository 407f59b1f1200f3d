package memory

import (
	"context"
	"sync"

	"kambaz-backend/internal/models"
)

type EnrollmentStore struct {
	mu          sync.RWMutex
	enrollments []models.Enrollment
}

func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{}
}

func (s *EnrollmentStore) FindForUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	return s.filter(func(e models.Enrollment) bool { return e.User == userID }), nil
}

func (s *EnrollmentStore) FindForCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return s.filter(func(e models.Enrollment) bool { return e.Course == courseID }), nil
}

func (s *EnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments = append(s.enrollments, *enrollment)
	return nil
}

func (s *EnrollmentStore) Delete(ctx context.Context, userID, courseID string) error {
	s.remove(func(e models.Enrollment) bool { return e.User == userID && e.Course == courseID })
	return nil
}

func (s *EnrollmentStore) DeleteForCourse(ctx context.Context, courseID string) error {
	s.remove(func(e models.Enrollment) bool { return e.Course == courseID })
	return nil
}

func (s *EnrollmentStore) filter(keep func(models.Enrollment) bool) []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var enrollments []models.Enrollment
	for _, e := range s.enrollments {
		if keep(e) {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments
}

func (s *EnrollmentStore) remove(drop func(models.Enrollment) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.enrollments[:0]
	for _, e := range s.enrollments {
		if !drop(e) {
			kept = append(kept, e)
		}
	}
	s.enrollments = kept
}
