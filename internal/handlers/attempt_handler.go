package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

// ListAttempts returns the session user's own attempts for the quiz, newest
// attempt number first.
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	user := RequireUser(c)
	if user == nil {
		return
	}
	attempts, err := h.Service.ListForStudent(context.Background(), c.Param("quizId"), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

type attemptSubmission struct {
	Answers []models.SubmittedAnswer `json:"answers"`
}

// SubmitAttempt checks, in order: session, STUDENT role, quiz existence,
// published flag, attempt limit. Then it grades and writes the attempt in
// one insert.
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	user := RequireUser(c)
	if user == nil {
		return
	}
	if user.Role != models.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only students can submit attempts"})
		return
	}
	var body attemptSubmission
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	start := time.Now()
	attempt, err := h.Service.Submit(context.Background(), c.Param("quizId"), user.ID, body.Answers)
	gradingDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			attemptSubmissions.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
		case errors.Is(err, service.ErrQuizNotAvailable):
			attemptSubmissions.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusForbidden, gin.H{"message": "Quiz is not available"})
		case errors.Is(err, service.ErrAttemptLimitReached):
			attemptSubmissions.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusForbidden, gin.H{"message": "Maximum attempts reached"})
		default:
			attemptSubmissions.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	attemptSubmissions.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, attempt)
}
