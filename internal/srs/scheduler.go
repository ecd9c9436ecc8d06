package srs

import (
	"fmt"
	"math"
	"sort"
	"time"

	"prep-service/internal/models"
)

// Scheduler computes spaced-repetition state transitions. It is a simplified
// SM-2: a per-card (interval, ease) pair stepped by the user's recall grade.
type Scheduler struct{}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Rate applies one recall grade to a card and returns the updated card. The
// input card is not modified; the caller persists the returned value. Ease
// never drops below 1.3 and the interval never drops below 1 day.
func (s *Scheduler) Rate(card models.Flashcard, rating Rating, now time.Time) (models.Flashcard, error) {
	if !rating.IsValid() {
		return card, fmt.Errorf("invalid rating %q", rating)
	}

	interval := card.Interval
	if interval < MinInterval {
		interval = DefaultInterval
	}
	ease := card.Ease
	if ease <= 0 {
		ease = DefaultEase
	}

	switch rating {
	case RatingAgain:
		interval = 1
		ease = math.Max(MinEase, ease-0.2)
	case RatingHard:
		interval = math.Max(MinInterval, interval*1.2)
		ease = math.Max(MinEase, ease-0.15)
	case RatingGood:
		interval = math.Max(MinInterval, interval*ease)
	case RatingEasy:
		interval = math.Max(MinInterval, interval*ease*1.3)
		ease = ease + 0.1
	}

	// Intervals are stored in whole days; the raw product only matters for
	// the next multiplication, and rounding keeps due dates on day bounds.
	rounded := math.Round(interval)

	card.Interval = rounded
	card.Ease = ease
	card.DueDate = now.AddDate(0, 0, int(rounded))
	card.Reviews++
	card.LastReview = now
	card.Difficulty = string(rating)
	return card, nil
}

// NewCard initializes the scheduling state of a freshly created card. A new
// card is immediately due.
func (s *Scheduler) NewCard(card models.Flashcard, now time.Time) models.Flashcard {
	card.Interval = DefaultInterval
	card.Ease = DefaultEase
	card.DueDate = now
	card.Reviews = 0
	card.LastReview = time.Time{}
	card.Difficulty = "new"
	card.CreatedAt = now
	return card
}

// DueCards returns the cards due at or before now, earliest first. Cards
// without a due date count as due and sort ahead of everything else.
func (s *Scheduler) DueCards(cards []models.Flashcard, now time.Time) []models.Flashcard {
	due := make([]models.Flashcard, 0)
	for _, card := range cards {
		if card.DueDate.IsZero() || !card.DueDate.After(now) {
			due = append(due, card)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].DueDate.IsZero() != due[j].DueDate.IsZero() {
			return due[i].DueDate.IsZero()
		}
		return due[i].DueDate.Before(due[j].DueDate)
	})
	return due
}

// Stats summarizes a user's deck for the study screen. The streak value is a
// coarse engagement proxy derived from review volume over the last week, not
// a calendar-accurate consecutive-day streak; the formula is kept as-is for
// compatibility with existing client displays.
func (s *Scheduler) Stats(cards []models.Flashcard, now time.Time) models.CardStats {
	stats := models.CardStats{
		DueToday:   len(s.DueCards(cards, now)),
		TotalCards: len(cards),
	}

	lastWeek := now.AddDate(0, 0, -7)
	recentReviews := 0
	for _, card := range cards {
		if card.Interval > masteredInterval {
			stats.Mastered++
		}
		if !card.LastReview.IsZero() && card.LastReview.After(lastWeek) {
			recentReviews++
		}
	}

	if recentReviews > 0 {
		streak := recentReviews / 5
		if streak < 1 {
			streak = 1
		}
		if streak > 7 {
			streak = 7
		}
		stats.Streak = streak
	}
	return stats
}
