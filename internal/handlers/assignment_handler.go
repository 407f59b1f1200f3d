package handlers

import (
	"context"
	"net/http"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	Service *service.AssignmentService
}

func NewAssignmentHandler(s *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: s}
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.Service.ListForCourse(context.Background(), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	if RequireRole(c, "Only faculty can create assignments", models.RoleFaculty, models.RoleAdmin) == nil {
		return
	}
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.Service.CreateAssignment(context.Background(), c.Param("courseId"), &assignment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	if RequireRole(c, "Only faculty can update assignments", models.RoleFaculty, models.RoleAdmin) == nil {
		return
	}
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	assignment, err := h.Service.UpdateAssignment(context.Background(), c.Param("assignmentId"), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Assignment not found"})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	if RequireRole(c, "Only faculty can delete assignments", models.RoleFaculty, models.RoleAdmin) == nil {
		return
	}
	if err := h.Service.DeleteAssignment(context.Background(), c.Param("assignmentId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
