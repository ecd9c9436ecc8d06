package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"prep-service/internal/event"
	"prep-service/internal/models"
	"prep-service/internal/repository"
	"prep-service/internal/srs"

	"github.com/google/uuid"
)

// FlashcardService owns the flashcard deck and its spaced-repetition state.
// Rating a card is optimistic: the updated card is returned immediately and
// the durable write happens in the background; a failed write is reported on
// the event side channel, never to the caller.
type FlashcardService struct {
	Repo      *repository.FlashcardRepository
	History   *repository.HistoryRepository
	scheduler *srs.Scheduler
	publisher *event.EventPublisher
}

func NewFlashcardService(
	repo *repository.FlashcardRepository,
	history *repository.HistoryRepository,
	publisher *event.EventPublisher,
) *FlashcardService {
	return &FlashcardService{
		Repo:      repo,
		History:   history,
		scheduler: srs.NewScheduler(),
		publisher: publisher,
	}
}

// ListCards returns a user's deck, seeding the default deck on first use so
// the study screen is never empty.
func (s *FlashcardService) ListCards(ctx context.Context, userID string) ([]models.Flashcard, error) {
	cards, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cards) > 0 {
		return cards, nil
	}

	now := time.Now()
	seeded := make([]models.Flashcard, 0, len(models.DefaultFlashcards))
	for _, card := range models.DefaultFlashcards {
		card.ID = uuid.NewString()
		card.UserID = userID
		seeded = append(seeded, s.scheduler.NewCard(card, now))
	}
	if err := s.Repo.CreateMany(ctx, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed default cards: %w", err)
	}
	return seeded, nil
}

func (s *FlashcardService) CreateCard(ctx context.Context, userID string, card models.Flashcard) (*models.Flashcard, error) {
	card.ID = uuid.NewString()
	card.UserID = userID
	card = s.scheduler.NewCard(card, time.Now())
	if err := s.Repo.Create(ctx, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *FlashcardService) DeleteCard(ctx context.Context, userID, cardID string) error {
	return s.Repo.Delete(ctx, userID, cardID)
}

// RateCard applies one recall grade and returns the updated card. The
// in-memory transition is the source of truth for the response; persistence
// is fire-and-forget. A crash between the two leaves durable state one
// rating behind, which this domain tolerates.
func (s *FlashcardService) RateCard(ctx context.Context, userID, cardID string, rating srs.Rating) (*models.Flashcard, error) {
	card, err := s.Repo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, fmt.Errorf("card %s does not belong to user", cardID)
	}

	updated, err := s.scheduler.Rate(*card, rating, time.Now())
	if err != nil {
		return nil, err
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Repo.UpdateScheduling(writeCtx, &updated); err != nil {
			log.Printf("flashcard %s: durable write after rating failed: %v", updated.ID, err)
			s.publisher.PublishAsync("prep.card.sync_failed", map[string]interface{}{
				"card_id": updated.ID,
				"user_id": updated.UserID,
				"error":   err.Error(),
			})
		}
	}()

	return &updated, nil
}

func (s *FlashcardService) DueCards(ctx context.Context, userID string, now time.Time) ([]models.Flashcard, error) {
	cards, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.scheduler.DueCards(cards, now), nil
}

func (s *FlashcardService) Stats(ctx context.Context, userID string, now time.Time) (models.CardStats, error) {
	cards, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return models.CardStats{}, err
	}
	return s.scheduler.Stats(cards, now), nil
}

func (s *FlashcardService) TrackStudySession(ctx context.Context, session *models.StudySession) error {
	session.ID = uuid.NewString()
	if session.Timestamp.IsZero() {
		session.Timestamp = models.FlexTime(time.Now())
	}
	return s.History.CreateStudySession(ctx, session)
}
