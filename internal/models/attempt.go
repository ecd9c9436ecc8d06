package models

// QuestionAttempt is an immutable per-question event, written once when the
// user answers and never mutated afterwards.
type QuestionAttempt struct {
	ID         string   `bson:"_id,omitempty" json:"id"`
	UserID     string   `bson:"user_id" json:"user_id"`
	QuestionID string   `bson:"question_id" json:"question_id"`
	Subject    string   `bson:"subject" json:"subject"`
	Topic      string   `bson:"topic" json:"topic"`
	Year       int      `bson:"year,omitempty" json:"year,omitempty"`
	Correct    bool     `bson:"correct" json:"correct"`
	Choice     int      `bson:"choice" json:"choice"`
	Confidence float64  `bson:"confidence" json:"confidence"`
	Timestamp  FlexTime `bson:"timestamp" json:"timestamp"`
}

// QuizAttempt summarizes one completed quiz session.
type QuizAttempt struct {
	ID             string   `bson:"_id,omitempty" json:"id"`
	UserID         string   `bson:"user_id" json:"user_id"`
	Mode           string   `bson:"mode" json:"mode"`
	Score          float64  `bson:"score" json:"score"`
	TotalQuestions int      `bson:"total_questions" json:"total_questions"`
	AnsweredCount  int      `bson:"answered_count" json:"answered_count"`
	CorrectCount   int      `bson:"correct_count" json:"correct_count"`
	TimeSpent      int      `bson:"time_spent" json:"time_spent"`
	Subjects       []string `bson:"subjects" json:"subjects"`
	Year           string   `bson:"year,omitempty" json:"year,omitempty"`
	Timestamp      FlexTime `bson:"timestamp" json:"timestamp"`
}

// StudySession records a flashcard study sitting for engagement tracking.
type StudySession struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	UserID        string   `bson:"user_id" json:"user_id"`
	CardsReviewed int      `bson:"cards_reviewed" json:"cards_reviewed"`
	DurationSecs  int      `bson:"duration_seconds" json:"duration_seconds"`
	Timestamp     FlexTime `bson:"timestamp" json:"timestamp"`
}

// Quiz modes accepted on attempt summaries.
const (
	ModePractice = "practice"
	ModeExam     = "exam"
	ModeEndless  = "endless"
)
