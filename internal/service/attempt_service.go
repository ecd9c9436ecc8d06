package service

import (
	"context"
	"log"
	"time"

	"prep-service/internal/analytics"
	"prep-service/internal/models"
	"prep-service/internal/repository"

	"github.com/google/uuid"
)

// AttemptService records question attempts and quiz summaries and keeps the
// per-topic aggregate in step. The aggregate update after a batch write is a
// soft failure: the events are durable, the aggregate catches up on the next
// write or on the legacy bootstrap path.
type AttemptService struct {
	Attempts  *repository.AttemptRepository
	History   *repository.HistoryRepository
	Stats     *repository.StatsRepository
	Questions *repository.QuestionRepository
}

func NewAttemptService(
	attempts *repository.AttemptRepository,
	history *repository.HistoryRepository,
	stats *repository.StatsRepository,
	questions *repository.QuestionRepository,
) *AttemptService {
	return &AttemptService{
		Attempts:  attempts,
		History:   history,
		Stats:     stats,
		Questions: questions,
	}
}

// TrackAttempt records one answered question.
func (s *AttemptService) TrackAttempt(ctx context.Context, attempt models.QuestionAttempt) (*models.QuestionAttempt, error) {
	prepared := s.prepare(ctx, attempt)
	if err := s.Attempts.Create(ctx, &prepared); err != nil {
		return nil, err
	}
	s.updateAggregates(ctx, prepared.UserID, []models.QuestionAttempt{prepared})
	return &prepared, nil
}

// TrackBatch records a whole quiz's attempts in one write.
func (s *AttemptService) TrackBatch(ctx context.Context, userID string, attempts []models.QuestionAttempt) error {
	if len(attempts) == 0 {
		return nil
	}
	prepared := make([]models.QuestionAttempt, 0, len(attempts))
	for _, attempt := range attempts {
		attempt.UserID = userID
		prepared = append(prepared, s.prepare(ctx, attempt))
	}
	if err := s.Attempts.CreateBatch(ctx, prepared); err != nil {
		return err
	}
	s.updateAggregates(ctx, userID, prepared)
	return nil
}

func (s *AttemptService) TrackQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	attempt.ID = uuid.NewString()
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = models.FlexTime(time.Now())
	}
	return s.History.CreateQuizAttempt(ctx, attempt)
}

// prepare assigns identity and timestamp and backfills subject/topic from
// the question bank when the client omitted them.
func (s *AttemptService) prepare(ctx context.Context, attempt models.QuestionAttempt) models.QuestionAttempt {
	attempt.ID = uuid.NewString()
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = models.FlexTime(time.Now())
	}
	if attempt.Subject == "" || attempt.Topic == "" {
		question, err := s.Questions.FindByID(ctx, attempt.QuestionID)
		if err == nil {
			attempt.Subject = question.Subject
			attempt.Topic = question.Topic
			attempt.Year = question.Year
		}
	}
	return attempt
}

func (s *AttemptService) updateAggregates(ctx context.Context, userID string, attempts []models.QuestionAttempt) {
	perf, err := s.Stats.FindTopicPerformance(ctx, userID)
	if err != nil {
		log.Printf("attempts: aggregate read failed for %s: %v", userID, err)
		return
	}
	perf = analytics.ApplyAttempts(perf, attempts)
	if err := s.Stats.UpsertTopicPerformance(ctx, userID, perf); err != nil {
		log.Printf("attempts: aggregate write failed for %s: %v", userID, err)
	}
}
