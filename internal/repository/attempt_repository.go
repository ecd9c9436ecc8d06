package repository

import (
	"context"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AttemptRepository stores the immutable per-question attempt events.
type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("question_attempts")}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.QuestionAttempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) CreateBatch(ctx context.Context, attempts []models.QuestionAttempt) error {
	docs := make([]interface{}, len(attempts))
	for i := range attempts {
		docs[i] = attempts[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *AttemptRepository) FindByUser(ctx context.Context, userID string) ([]models.QuestionAttempt, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuestionAttempt
	for cur.Next(ctx) {
		var attempt models.QuestionAttempt
		if err := cur.Decode(&attempt); err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, nil
}
