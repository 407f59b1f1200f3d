package handlers

import (
	"context"
	"errors"
	"net/http"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/service"
	"kambaz-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	Service  *service.UserService
	Sessions session.Store
}

func NewUserHandler(s *service.UserService, sessions session.Store) *UserHandler {
	return &UserHandler{Service: s, Sessions: sessions}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) Signup(c *gin.Context) {
	var user models.User
	if err := bindUser(c, &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.Service.Signup(context.Background(), &user)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if err := h.openSession(c, created); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *UserHandler) Signin(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user, err := h.Service.Signin(context.Background(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			signinAttempts.WithLabelValues("failure").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unable to login. Try again later."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if err := h.openSession(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	signinAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Signout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.Sessions.Delete(context.Background(), token); err == nil {
			activeSessions.Dec()
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

func (h *UserHandler) Profile(c *gin.Context) {
	user := RequireUser(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers(context.Background(), c.Query("role"), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Service.GetUser(context.Background(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := bindUser(c, &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	created, err := h.Service.CreateUser(context.Background(), &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateUser also refreshes the session snapshot when a user edits their own
// record, so the profile reflects the change immediately.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("userId")
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	updated, err := h.Service.UpdateUser(context.Background(), userID, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if current := CurrentUser(c); current != nil && current.ID == userID {
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			_ = h.Sessions.Save(context.Background(), token, updated)
		}
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Service.DeleteUser(context.Background(), c.Param("userId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) openSession(c *gin.Context, user *models.User) error {
	token := uuid.NewString()
	if err := h.Sessions.Save(context.Background(), token, user); err != nil {
		return err
	}
	activeSessions.Inc()
	c.SetCookie(session.CookieName, token, int(session.TTL.Seconds()), "/", "", false, true)
	c.Set(currentUserKey, user)
	return nil
}

// bindUser decodes a user body that carries the password in plain text. The
// password json tag is write-only, so binding goes through a shadow struct.
func bindUser(c *gin.Context, user *models.User) error {
	var body struct {
		models.User
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return err
	}
	*user = body.User
	user.Password = body.Password
	return nil
}
