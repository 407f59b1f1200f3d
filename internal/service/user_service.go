package service

import (
	"context"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repo repository.UserStore
}

func NewUserService(repo repository.UserStore) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Signup(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := s.Repo.FindByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	return s.CreateUser(ctx, user)
}

func (s *UserService) Signin(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hash)
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers filters by role and/or partial name when given; both empty
// returns everyone.
func (s *UserService) ListUsers(ctx context.Context, role, name string) ([]models.User, error) {
	switch {
	case role != "":
		return s.Repo.FindByRole(ctx, role)
	case name != "":
		return s.Repo.FindByPartialName(ctx, name)
	default:
		return s.Repo.FindAll(ctx)
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, update map[string]any) (*models.User, error) {
	if pw, ok := update["password"].(string); ok && pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		update["password"] = string(hash)
	}
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
