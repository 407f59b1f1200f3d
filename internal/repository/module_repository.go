package repository

import (
	"context"
	"errors"

	"kambaz-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModuleRepository struct {
	Col *mongo.Collection
}

func NewModuleRepository(db *mongo.Database) *ModuleRepository {
	return &ModuleRepository{Col: db.Collection("modules")}
}

// keyFilter matches a module by generated id or by name, whichever hits.
func keyFilter(key string) bson.M {
	return bson.M{"$or": []bson.M{
		{"_id": key},
		{"name": key},
	}}
}

func (r *ModuleRepository) FindForCourse(ctx context.Context, courseID string) ([]models.Module, error) {
	cur, err := r.Col.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var modules []models.Module
	for cur.Next(ctx) {
		var m models.Module
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func (r *ModuleRepository) FindByKey(ctx context.Context, key string) (*models.Module, error) {
	var module models.Module
	err := r.Col.FindOne(ctx, keyFilter(key)).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	_, err := r.Col.InsertOne(ctx, module)
	return err
}

func (r *ModuleRepository) UpdateByKey(ctx context.Context, key string, update map[string]any) (*models.Module, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var module models.Module
	err := r.Col.FindOneAndUpdate(ctx, keyFilter(key), bson.M{"$set": bson.M(update)}, opts).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) DeleteByKey(ctx context.Context, key string) error {
	_, err := r.Col.DeleteOne(ctx, keyFilter(key))
	return err
}
