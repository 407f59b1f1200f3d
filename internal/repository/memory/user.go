// Package memory holds in-memory implementations of the repository store
// interfaces. They back the automated tests; the served application always
// runs on the Mongo implementations.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"kambaz-backend/internal/models"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

func (s *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	return s.filter(func(models.User) bool { return true }), nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.filter(func(u models.User) bool { return u.Role == role }), nil
}

func (s *UserStore) FindByPartialName(ctx context.Context, name string) ([]models.User, error) {
	name = strings.ToLower(name)
	return s.filter(func(u models.User) bool {
		return strings.Contains(strings.ToLower(u.FirstName), name) ||
			strings.Contains(strings.ToLower(u.LastName), name)
	}), nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) Update(ctx context.Context, id string, update map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	applyUserUpdate(&u, update)
	s.users[id] = u
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func (s *UserStore) filter(keep func(models.User) bool) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []models.User
	for _, u := range s.users {
		if keep(u) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users
}

func applyUserUpdate(u *models.User, update map[string]any) {
	for k, v := range update {
		sv, _ := v.(string)
		switch k {
		case "username":
			u.Username = sv
		case "password":
			u.Password = sv
		case "firstName":
			u.FirstName = sv
		case "lastName":
			u.LastName = sv
		case "email":
			u.Email = sv
		case "dob":
			u.DOB = sv
		case "role":
			u.Role = sv
		case "loginId":
			u.LoginID = sv
		case "section":
			u.Section = sv
		case "lastActivity":
			u.LastActivity = sv
		case "totalActivity":
			u.TotalActivity = sv
		}
	}
}
