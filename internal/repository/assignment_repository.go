package repository

import (
	"context"
	"errors"

	"kambaz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssignmentRepository struct {
	Col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{Col: db.Collection("assignments")}
}

func (r *AssignmentRepository) FindForCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	cur, err := r.Col.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var assignments []models.Assignment
	for cur.Next(ctx) {
		var a models.Assignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	_, err := r.Col.InsertOne(ctx, assignment)
	return err
}

func (r *AssignmentRepository) Update(ctx context.Context, id string, update map[string]any) (*models.Assignment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var assignment models.Assignment
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(update)}, opts).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
