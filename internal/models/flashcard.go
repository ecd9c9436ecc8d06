package models

import "time"

// Flashcard carries both the card content and its spaced-repetition
// scheduling state. Interval is stored in whole days, Ease stays a float.
type Flashcard struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Subject     string    `bson:"subject" json:"subject"`
	Topic       string    `bson:"topic" json:"topic"`
	Question    string    `bson:"question" json:"question"`
	Answer      string    `bson:"answer" json:"answer"`
	Explanation string    `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Hint        string    `bson:"hint,omitempty" json:"hint,omitempty"`
	Interval    float64   `bson:"interval" json:"interval"`
	Ease        float64   `bson:"ease" json:"ease"`
	DueDate     time.Time `bson:"due_date" json:"due_date"`
	Reviews     int       `bson:"reviews" json:"reviews"`
	LastReview  time.Time `bson:"last_review,omitempty" json:"last_review,omitempty"`
	Difficulty  string    `bson:"difficulty" json:"difficulty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// CardStats is the study-overview block shown on the flashcard screen.
type CardStats struct {
	DueToday   int `json:"due_today"`
	TotalCards int `json:"total_cards"`
	Mastered   int `json:"mastered"`
	Streak     int `json:"streak"`
}

// DefaultFlashcards seeds a new user's deck so the study screen is never
// empty on first visit.
var DefaultFlashcards = []Flashcard{
	{
		Subject:     "Mathematics",
		Topic:       "Geometry",
		Question:    "What is the formula for the area of a circle?",
		Answer:      "πr²",
		Explanation: "The area is calculated by multiplying π (approximately 3.14159) by the square of the radius.",
		Hint:        "Think about π and radius",
	},
	{
		Subject:     "Mathematics",
		Topic:       "Algebra",
		Question:    "Solve for x: 2x + 5 = 13",
		Answer:      "x = 4",
		Explanation: "Subtract 5 from both sides: 2x = 8, then divide both sides by 2: x = 4",
		Hint:        "Isolate x by moving numbers to the other side",
	},
	{
		Subject:     "English",
		Topic:       "Grammar",
		Question:    "What is a noun?",
		Answer:      "A word that represents a person, place, thing, or idea.",
		Explanation: "Nouns are one of the main parts of speech and can be common or proper.",
		Hint:        "People, places, things...",
	},
	{
		Subject:     "Integrated Science",
		Topic:       "Biology",
		Question:    "What is photosynthesis?",
		Answer:      "The process by which plants convert light energy into chemical energy.",
		Explanation: "Plants use sunlight, water, and carbon dioxide to create oxygen and energy in the form of sugar.",
		Hint:        "Think about what plants do with sunlight",
	},
}
