package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository stores quiz session summaries and flashcard study
// sessions, the raw material for the analytics window.
type HistoryRepository struct {
	Quizzes  *mongo.Collection
	Sessions *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{
		Quizzes:  db.Collection("quiz_attempts"),
		Sessions: db.Collection("study_sessions"),
	}
}

func (r *HistoryRepository) CreateQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	_, err := r.Quizzes.InsertOne(ctx, attempt)
	return err
}

func (r *HistoryRepository) CreateStudySession(ctx context.Context, session *models.StudySession) error {
	_, err := r.Sessions.InsertOne(ctx, session)
	return err
}

// FindQuizAttemptsSince returns a user's quiz summaries newer than the
// cutoff, most recent first.
func (r *HistoryRepository) FindQuizAttemptsSince(ctx context.Context, userID string, since time.Time) ([]models.QuizAttempt, error) {
	filter := bson.M{
		"user_id":   userID,
		"timestamp": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.Quizzes.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuizAttempt
	for cur.Next(ctx) {
		var attempt models.QuizAttempt
		if err := cur.Decode(&attempt); err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, nil
}
