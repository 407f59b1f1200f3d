package memory

import (
	"context"
	"sync"

	"kambaz-backend/internal/models"
)

type AssignmentStore struct {
	mu          sync.RWMutex
	assignments map[string]models.Assignment
}

func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{assignments: make(map[string]models.Assignment)}
}

func (s *AssignmentStore) FindForCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var assignments []models.Assignment
	for _, a := range s.assignments {
		if a.Course == courseID {
			assignments = append(assignments, a)
		}
	}
	return assignments, nil
}

func (s *AssignmentStore) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.assignments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *AssignmentStore) Create(ctx context.Context, assignment *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[assignment.ID] = *assignment
	return nil
}

func (s *AssignmentStore) Update(ctx context.Context, id string, update map[string]any) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok {
		return nil, nil
	}
	for k, v := range update {
		sv, _ := v.(string)
		switch k {
		case "title":
			a.Title = sv
		case "description":
			a.Description = sv
		case "course":
			a.Course = sv
		case "dueDate":
			a.DueDate = sv
		case "availableFromDate":
			a.AvailableFromDate = sv
		case "availableUntilDate":
			a.AvailableUntilDate = sv
		case "points":
			if n, ok := v.(float64); ok {
				a.Points = int(n)
			}
		}
	}
	s.assignments[id] = a
	return &a, nil
}

func (s *AssignmentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assignments, id)
	return nil
}
