package service

import (
	"context"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository"

	"github.com/google/uuid"
)

type CourseService struct {
	Repo        repository.CourseStore
	Enrollments repository.EnrollmentStore
	Users       repository.UserStore
}

func NewCourseService(repo repository.CourseStore, enrollments repository.EnrollmentStore, users repository.UserStore) *CourseService {
	return &CourseService{Repo: repo, Enrollments: enrollments, Users: users}
}

// CreateCourse inserts the course and immediately enrolls its creator.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course, creatorID string) (*models.Course, error) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if err := s.Repo.Create(ctx, course); err != nil {
		return nil, err
	}
	enrollment := &models.Enrollment{
		ID:     uuid.NewString(),
		User:   creatorID,
		Course: course.ID,
	}
	if err := s.Enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CourseService) ListCoursesForUser(ctx context.Context, userID string) ([]models.Course, error) {
	enrollments, err := s.Enrollments.FindForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.Course)
	}
	return s.Repo.FindByIDs(ctx, ids)
}

// ListUsersForCourse resolves enrollment user ids to full user records,
// dropping any that no longer resolve.
func (s *CourseService) ListUsersForCourse(ctx context.Context, courseID string) ([]models.User, error) {
	enrollments, err := s.Enrollments.FindForCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	for _, e := range enrollments {
		user, err := s.Users.FindByID(ctx, e.User)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id string, update map[string]any) (*models.Course, error) {
	return s.Repo.Update(ctx, id, update)
}

// DeleteCourse removes all enrollments referencing the course before the
// course itself, so no dangling enrollment survives a partial failure.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.Enrollments.DeleteForCourse(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
