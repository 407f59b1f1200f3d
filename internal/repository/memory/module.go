package memory

import (
	"context"
	"sync"

	"kambaz-backend/internal/models"
)

type ModuleStore struct {
	mu      sync.RWMutex
	modules []models.Module
}

func NewModuleStore() *ModuleStore {
	return &ModuleStore{}
}

func (s *ModuleStore) FindForCourse(ctx context.Context, courseID string) ([]models.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var modules []models.Module
	for _, m := range s.modules {
		if m.Course == courseID {
			modules = append(modules, m)
		}
	}
	return modules, nil
}

func (s *ModuleStore) FindByKey(ctx context.Context, key string) (*models.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(key); i >= 0 {
		m := s.modules[i]
		return &m, nil
	}
	return nil, nil
}

func (s *ModuleStore) Create(ctx context.Context, module *models.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules = append(s.modules, *module)
	return nil
}

func (s *ModuleStore) UpdateByKey(ctx context.Context, key string, update map[string]any) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(key)
	if i < 0 {
		return nil, nil
	}
	m := s.modules[i]
	for k, v := range update {
		sv, _ := v.(string)
		switch k {
		case "name":
			m.Name = sv
		case "description":
			m.Description = sv
		case "course":
			m.Course = sv
		}
	}
	s.modules[i] = m
	return &m, nil
}

func (s *ModuleStore) DeleteByKey(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(key); i >= 0 {
		s.modules = append(s.modules[:i], s.modules[i+1:]...)
	}
	return nil
}

// indexOf matches by id first, then by name, mirroring the Mongo $or filter.
func (s *ModuleStore) indexOf(key string) int {
	for i, m := range s.modules {
		if m.ID == key {
			return i
		}
	}
	for i, m := range s.modules {
		if m.Name == key {
			return i
		}
	}
	return -1
}
