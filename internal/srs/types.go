package srs

// Rating is the four-way recall grade a user gives after flipping a card.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// IsValid reports whether r is one of the four accepted grades.
func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

// Scheduling floors and defaults.
const (
	MinEase         = 1.3
	MinInterval     = 1.0
	DefaultEase     = 2.5
	DefaultInterval = 1.0

	// A card is considered mastered once its interval clears three weeks.
	masteredInterval = 21.0
)
