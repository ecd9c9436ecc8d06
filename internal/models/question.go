package models

import "time"

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Subject     string    `bson:"subject" json:"subject"`
	Topic       string    `bson:"topic" json:"topic"`
	Year        int       `bson:"year" json:"year"`
	Content     string    `bson:"content" json:"content"`
	Options     []Option  `bson:"options" json:"options"`
	Correct     int       `bson:"correct" json:"correct"`
	Explanation string    `bson:"explanation" json:"explanation"`
	Difficulty  string    `bson:"difficulty_level" json:"difficulty_level"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// IsAnswerCorrect checks a chosen option index against the answer key.
func (q *Question) IsAnswerCorrect(choice int) bool {
	return choice >= 0 && choice < len(q.Options) && choice == q.Correct
}
