package repository

import (
	"context"

	"kambaz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository struct {
	Col *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{Col: db.Collection("enrollments")}
}

func (r *EnrollmentRepository) FindForUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *EnrollmentRepository) FindForCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return r.find(ctx, bson.M{"course": courseID})
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	_, err := r.Col.InsertOne(ctx, enrollment)
	return err
}

func (r *EnrollmentRepository) Delete(ctx context.Context, userID, courseID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user": userID, "course": courseID})
	return err
}

func (r *EnrollmentRepository) DeleteForCourse(ctx context.Context, courseID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"course": courseID})
	return err
}

func (r *EnrollmentRepository) find(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var enrollments []models.Enrollment
	for cur.Next(ctx) {
		var e models.Enrollment
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, nil
}
