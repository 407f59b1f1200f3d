package service

import (
	"context"
	"fmt"
	"time"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"
)

type ModuleService struct {
	Repo repository.ModuleStore
}

func NewModuleService(repo repository.ModuleStore) *ModuleService {
	return &ModuleService{Repo: repo}
}

func (s *ModuleService) ListForCourse(ctx context.Context, courseID string) ([]models.Module, error) {
	return s.Repo.FindForCourse(ctx, courseID)
}

func (s *ModuleService) CreateModule(ctx context.Context, courseID string, module *models.Module) (*models.Module, error) {
	module.Course = courseID
	if module.ID == "" {
		module.ID = generateModuleID()
	}
	if err := s.Repo.Create(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ModuleService) UpdateModule(ctx context.Context, key string, update map[string]any) (*models.Module, error) {
	return s.Repo.UpdateByKey(ctx, key, update)
}

func (s *ModuleService) DeleteModule(ctx context.Context, key string) error {
	return s.Repo.DeleteByKey(ctx, key)
}

// generateModuleID keeps the short human-readable M-prefixed ids modules
// have always had.
func generateModuleID() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return "M" + millis[len(millis)-6:]
}
