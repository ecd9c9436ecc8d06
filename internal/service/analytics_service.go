package service

import (
	"context"
	"log"
	"sync"
	"time"

	"prep-service/internal/analytics"
	"prep-service/internal/models"
	"prep-service/internal/repository"
)

// AnalyticsService materializes the dashboard data: daily insights, overall
// progress, weaknesses and recommendations over a lookback window. Reads
// degrade to empty data on failure so the dashboard always renders.
type AnalyticsService struct {
	History  *repository.HistoryRepository
	Stats    *repository.StatsRepository
	Attempts *repository.AttemptRepository
	engine   *analytics.Engine
}

func NewAnalyticsService(
	history *repository.HistoryRepository,
	stats *repository.StatsRepository,
	attempts *repository.AttemptRepository,
	lookup analytics.TopicLookup,
) *AnalyticsService {
	return &AnalyticsService{
		History:  history,
		Stats:    stats,
		Attempts: attempts,
		engine:   analytics.NewEngine(lookup),
	}
}

const DefaultLookbackDays = 30

// loadData fetches the quiz history and the topic aggregate. The two reads
// are independent, so they run concurrently and join before aggregation.
func (s *AnalyticsService) loadData(ctx context.Context, userID string, days int) ([]models.QuizAttempt, map[string]models.TopicPerformance) {
	if days <= 0 {
		days = DefaultLookbackDays
	}
	since := time.Now().AddDate(0, 0, -days)

	var (
		wg      sync.WaitGroup
		history []models.QuizAttempt
		perf    map[string]models.TopicPerformance
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		history, err = s.History.FindQuizAttemptsSince(ctx, userID, since)
		if err != nil {
			log.Printf("analytics: quiz history read failed for %s: %v", userID, err)
			history = nil
		}
	}()
	go func() {
		defer wg.Done()
		perf = s.topicPerformance(ctx, userID)
	}()
	wg.Wait()

	return history, perf
}

// topicPerformance loads the prepared aggregate, falling back to a full scan
// of raw attempts for users whose history predates the aggregate document.
// A successful fallback bootstraps the aggregate for the next read.
func (s *AnalyticsService) topicPerformance(ctx context.Context, userID string) map[string]models.TopicPerformance {
	perf, err := s.Stats.FindTopicPerformance(ctx, userID)
	if err != nil {
		log.Printf("analytics: aggregate read failed for %s: %v", userID, err)
		return map[string]models.TopicPerformance{}
	}
	if len(perf) > 0 {
		return perf
	}

	attempts, err := s.Attempts.FindByUser(ctx, userID)
	if err != nil {
		log.Printf("analytics: legacy attempt scan failed for %s: %v", userID, err)
		return map[string]models.TopicPerformance{}
	}
	perf = analytics.BuildFromAttempts(attempts)
	if len(perf) > 0 {
		if err := s.Stats.UpsertTopicPerformance(ctx, userID, perf); err != nil {
			log.Printf("analytics: aggregate bootstrap write failed for %s: %v", userID, err)
		}
	}
	return perf
}

func (s *AnalyticsService) Insights(ctx context.Context, userID string, days int) []models.DailyInsight {
	history, _ := s.loadData(ctx, userID, days)
	return s.engine.Aggregate(history)
}

func (s *AnalyticsService) Progress(ctx context.Context, userID string, days int) models.OverallProgress {
	history, perf := s.loadData(ctx, userID, days)
	insights := s.engine.Aggregate(history)
	return s.engine.Progress(insights, perf)
}

func (s *AnalyticsService) Weaknesses(ctx context.Context, userID string) []models.Weakness {
	return s.engine.Weaknesses(s.topicPerformance(ctx, userID))
}

func (s *AnalyticsService) Recommendations(ctx context.Context, userID string, days int) []models.Recommendation {
	history, perf := s.loadData(ctx, userID, days)
	insights := s.engine.Aggregate(history)
	overall := s.engine.Progress(insights, perf)
	weaknesses := s.engine.Weaknesses(perf)
	return s.engine.Recommend(weaknesses, overall)
}
