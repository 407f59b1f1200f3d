package handlers

import (
	"context"
	"net/http"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	Service *service.CourseService
}

func NewCourseHandler(s *service.CourseService) *CourseHandler {
	return &CourseHandler{Service: s}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.Service.ListCourses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourse requires a session; the creator is enrolled in the new course
// before the response goes out.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	user := RequireUser(c)
	if user == nil {
		return
	}
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.Service.CreateCourse(context.Background(), &course, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListCoursesForUser resolves the "current" placeholder to the session user.
func (h *CourseHandler) ListCoursesForUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "current" {
		user := RequireUser(c)
		if user == nil {
			return
		}
		userID = user.ID
	}
	courses, err := h.Service.ListCoursesForUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) ListUsersForCourse(c *gin.Context) {
	users, err := h.Service.ListUsersForCourse(context.Background(), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	course, err := h.Service.UpdateCourse(context.Background(), c.Param("courseId"), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.Service.DeleteCourse(context.Background(), c.Param("courseId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
