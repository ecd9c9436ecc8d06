package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("user_progress")}
}

func (r *ProgressRepository) Find(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Upsert(ctx context.Context, userID string, fields map[string]interface{}) error {
	update := bson.M{"$set": bson.M{
		"fields":       fields,
		"last_updated": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update, opts)
	return err
}
