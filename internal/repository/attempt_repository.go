package repository

import (
	"context"
	"log"

	"kambaz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	r := &AttemptRepository{Col: db.Collection("quizAttempts")}
	r.ensureIndexes(context.Background())
	return r
}

// ensureIndexes installs the unique (quiz, student, attemptNumber) index.
// Two racing submissions can both pass the attempt-count check; the index
// makes the loser fail as a duplicate key instead of writing a second copy
// of the same attempt number.
func (r *AttemptRepository) ensureIndexes(ctx context.Context) {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "quiz", Value: 1},
			{Key: "student", Value: 1},
			{Key: "attemptNumber", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("could not create quizAttempts index: %v", err)
	}
}

func (r *AttemptRepository) FindForStudent(ctx context.Context, quizID, studentID string) ([]models.QuizAttempt, error) {
	opts := options.Find().SetSort(bson.M{"attemptNumber": -1})
	cur, err := r.Col.Find(ctx, bson.M{"quiz": quizID, "student": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuizAttempt
	for cur.Next(ctx) {
		var a models.QuizAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

func (r *AttemptRepository) CountSubmitted(ctx context.Context, quizID, studentID string) (int, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{
		"quiz":      quizID,
		"student":   studentID,
		"submitted": true,
	})
	return int(n), err
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) DeleteByQuiz(ctx context.Context, quizID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"quiz": quizID})
	return err
}
