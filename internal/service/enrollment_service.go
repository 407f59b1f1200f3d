package service

import (
	"context"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"

	"github.com/google/uuid"
)

type EnrollmentService struct {
	Repo repository.EnrollmentStore
}

func NewEnrollmentService(repo repository.EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{Repo: repo}
}

func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		ID:     uuid.NewString(),
		User:   userID,
		Course: courseID,
	}
	if err := s.Repo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Unenroll(ctx context.Context, userID, courseID string) error {
	return s.Repo.Delete(ctx, userID, courseID)
}
