package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsRepository stores the per-user topic performance aggregate document.
type StatsRepository struct {
	Col *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{Col: db.Collection("user_stats")}
}

// FindTopicPerformance loads a user's aggregate map. A missing document is
// not an error; it returns an empty map so callers can decide to bootstrap.
func (r *StatsRepository) FindTopicPerformance(ctx context.Context, userID string) (map[string]models.TopicPerformance, error) {
	var stats models.UserStats
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&stats)
	if err == mongo.ErrNoDocuments {
		return map[string]models.TopicPerformance{}, nil
	}
	if err != nil {
		return nil, err
	}
	if stats.TopicPerformance == nil {
		stats.TopicPerformance = map[string]models.TopicPerformance{}
	}
	return stats.TopicPerformance, nil
}

func (r *StatsRepository) UpsertTopicPerformance(ctx context.Context, userID string, perf map[string]models.TopicPerformance) error {
	update := bson.M{"$set": bson.M{
		"topic_performance": perf,
		"last_updated":      time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update, opts)
	return err
}
