package service

import (
	"context"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"

	"github.com/google/uuid"
)

type AssignmentService struct {
	Repo repository.AssignmentStore
}

func NewAssignmentService(repo repository.AssignmentStore) *AssignmentService {
	return &AssignmentService{Repo: repo}
}

func (s *AssignmentService) ListForCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	return s.Repo.FindForCourse(ctx, courseID)
}

func (s *AssignmentService) CreateAssignment(ctx context.Context, courseID string, assignment *models.Assignment) (*models.Assignment, error) {
	assignment.Course = courseID
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	if err := s.Repo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, update map[string]any) (*models.Assignment, error) {
	return s.Repo.Update(ctx, id, update)
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
