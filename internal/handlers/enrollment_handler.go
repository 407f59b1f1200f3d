package handlers

import (
	"context"
	"net/http"

	"kambaz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	Service *service.EnrollmentService
}

func NewEnrollmentHandler(s *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{Service: s}
}

// resolveUserID maps the "current" placeholder to the session user id,
// answering 401 itself when no session exists.
func (h *EnrollmentHandler) resolveUserID(c *gin.Context) (string, bool) {
	userID := c.Param("userId")
	if userID != "current" {
		return userID, true
	}
	user := RequireUser(c)
	if user == nil {
		return "", false
	}
	return user.ID, true
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID, ok := h.resolveUserID(c)
	if !ok {
		return
	}
	enrollment, err := h.Service.Enroll(context.Background(), userID, c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	userID, ok := h.resolveUserID(c)
	if !ok {
		return
	}
	if err := h.Service.Unenroll(context.Background(), userID, c.Param("courseId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
