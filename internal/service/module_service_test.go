package service

import (
	"context"
	"strings"
	"testing"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository/memory"
)

func TestCreateModuleGeneratesShortID(t *testing.T) {
	svc := NewModuleService(memory.NewModuleStore())
	module, err := svc.CreateModule(context.Background(), "c1", &models.Module{Name: "Week 1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(module.ID, "M") || len(module.ID) != 7 {
		t.Errorf("expected an M-prefixed 7 char id, got %q", module.ID)
	}
	if module.Course != "c1" {
		t.Errorf("expected course c1, got %q", module.Course)
	}
}

func TestModuleAddressableByIDOrName(t *testing.T) {
	store := memory.NewModuleStore()
	svc := NewModuleService(store)
	ctx := context.Background()

	module, err := svc.CreateModule(ctx, "c1", &models.Module{Name: "Week 1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := svc.UpdateModule(ctx, "Week 1", map[string]any{"description": "intro"})
	if err != nil {
		t.Fatalf("update by name: %v", err)
	}
	if byName == nil || byName.Description != "intro" {
		t.Fatalf("expected the module updated through its name, got %+v", byName)
	}

	byID, err := svc.UpdateModule(ctx, module.ID, map[string]any{"description": "revised"})
	if err != nil {
		t.Fatalf("update by id: %v", err)
	}
	if byID == nil || byID.Description != "revised" {
		t.Fatalf("expected the module updated through its id, got %+v", byID)
	}

	if missing, err := svc.UpdateModule(ctx, "no-such-module", nil); err != nil || missing != nil {
		t.Errorf("expected nil, nil for an unknown key, got %v, %v", missing, err)
	}

	if err := svc.DeleteModule(ctx, "Week 1"); err != nil {
		t.Fatalf("delete by name: %v", err)
	}
	gone, err := store.FindByKey(ctx, module.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if gone != nil {
		t.Error("expected the module gone after delete by name")
	}
}
