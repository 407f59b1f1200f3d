package handlers

import (
	"context"
	"net/http"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	Service *service.ModuleService
}

func NewModuleHandler(s *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{Service: s}
}

func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.Service.ListForCourse(context.Background(), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) CreateModule(c *gin.Context) {
	if RequireRole(c, "Only faculty can create modules", models.RoleFaculty, models.RoleAdmin) == nil {
		return
	}
	var module models.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.Service.CreateModule(context.Background(), c.Param("courseId"), &module)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	if RequireRole(c, "Only faculty can update modules", models.RoleFaculty, models.RoleAdmin) == nil {
		return
	}
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	module, err := h.Service.UpdateModule(context.Background(), c.Param("moduleId"), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if module == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Module not found"})
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	if RequireRole(c, "Only faculty can delete modules", models.RoleFaculty, models.RoleAdmin) == nil {
		return
	}
	if err := h.Service.DeleteModule(context.Background(), c.Param("moduleId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
