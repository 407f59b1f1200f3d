package repository

import (
	"context"

	"kambaz-backend/internal/models"
)

// Store interfaces are the single persistence abstraction. Services receive
// them at construction; the Mongo implementations live in this package and
// in-memory fakes for tests live in repository/memory. A missing document is
// reported as (nil, nil), not as an error.

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	FindByPartialName(ctx context.Context, name string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id string, update map[string]any) error
	Delete(ctx context.Context, id string) error
}

type CourseStore interface {
	FindAll(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id string, update map[string]any) (*models.Course, error)
	Delete(ctx context.Context, id string) error
}

// ModuleStore addresses modules by key: the generated id or the module name,
// whichever matches first.
type ModuleStore interface {
	FindForCourse(ctx context.Context, courseID string) ([]models.Module, error)
	FindByKey(ctx context.Context, key string) (*models.Module, error)
	Create(ctx context.Context, module *models.Module) error
	UpdateByKey(ctx context.Context, key string, update map[string]any) (*models.Module, error)
	DeleteByKey(ctx context.Context, key string) error
}

type AssignmentStore interface {
	FindForCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	FindByID(ctx context.Context, id string) (*models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Update(ctx context.Context, id string, update map[string]any) (*models.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type EnrollmentStore interface {
	FindForUser(ctx context.Context, userID string) ([]models.Enrollment, error)
	FindForCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, userID, courseID string) error
	DeleteForCourse(ctx context.Context, courseID string) error
}

type QuizStore interface {
	FindForCourse(ctx context.Context, courseID string) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Replace(ctx context.Context, id string, quiz *models.Quiz) error
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

type AttemptStore interface {
	FindForStudent(ctx context.Context, quizID, studentID string) ([]models.QuizAttempt, error)
	CountSubmitted(ctx context.Context, quizID, studentID string) (int, error)
	Create(ctx context.Context, attempt *models.QuizAttempt) error
	DeleteByQuiz(ctx context.Context, quizID string) error
}
