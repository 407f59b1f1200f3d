package memory

import (
	"context"
	"sync"

	"kambaz-backend/internal/models"
)

type CourseStore struct {
	mu      sync.RWMutex
	courses map[string]models.Course
}

func NewCourseStore() *CourseStore {
	return &CourseStore{courses: make(map[string]models.Course)}
}

func (s *CourseStore) FindAll(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var courses []models.Course
	for _, c := range s.courses {
		courses = append(courses, c)
	}
	return courses, nil
}

func (s *CourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.courses[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *CourseStore) FindByIDs(ctx context.Context, ids []string) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var courses []models.Course
	for _, id := range ids {
		if c, ok := s.courses[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (s *CourseStore) Create(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = *course
	return nil
}

func (s *CourseStore) Update(ctx context.Context, id string, update map[string]any) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	for k, v := range update {
		sv, _ := v.(string)
		switch k {
		case "name":
			c.Name = sv
		case "number":
			c.Number = sv
		case "startDate":
			c.StartDate = sv
		case "endDate":
			c.EndDate = sv
		case "department":
			c.Department = sv
		case "description":
			c.Description = sv
		case "image":
			c.Image = sv
		case "credits":
			if n, ok := v.(float64); ok {
				c.Credits = int(n)
			}
		}
	}
	s.courses[id] = c
	return &c, nil
}

func (s *CourseStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courses, id)
	return nil
}
