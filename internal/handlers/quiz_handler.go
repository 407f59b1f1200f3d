package handlers

import (
	"context"
	"net/http"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// requireFaculty gates quiz mutation: 401 without a session, 403 for any
// role other than FACULTY. ADMIN is deliberately not accepted here, unlike
// modules and assignments.
func (h *QuizHandler) requireFaculty(c *gin.Context, message string) *models.User {
	user := RequireUser(c)
	if user == nil {
		return nil
	}
	if user.Role != models.RoleFaculty {
		c.JSON(http.StatusForbidden, gin.H{"message": message})
		return nil
	}
	return user
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	role := ""
	if user := CurrentUser(c); user != nil {
		role = user.Role
	}
	quizzes, err := h.Service.ListForCourse(context.Background(), c.Param("courseId"), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.GetQuiz(context.Background(), c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
		return
	}
	if user := CurrentUser(c); user != nil && user.Role == models.RoleStudent && !quiz.Published {
		c.JSON(http.StatusForbidden, gin.H{"message": "Quiz not available"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	if h.requireFaculty(c, "Only faculty can create quizzes") == nil {
		return
	}
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.Service.CreateQuiz(context.Background(), c.Param("courseId"), &quiz)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	if h.requireFaculty(c, "Only faculty can edit quizzes") == nil {
		return
	}
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	updated, err := h.Service.UpdateQuiz(context.Background(), c.Param("quizId"), &quiz)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if h.requireFaculty(c, "Only faculty can delete quizzes") == nil {
		return
	}
	deleted, err := h.Service.DeleteQuiz(context.Background(), c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}

func (h *QuizHandler) TogglePublish(c *gin.Context) {
	if h.requireFaculty(c, "Only faculty can publish quizzes") == nil {
		return
	}
	quiz, err := h.Service.TogglePublish(context.Background(), c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
