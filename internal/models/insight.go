package models

import "time"

// DailyInsight is one calendar day of aggregated quiz activity. Derived on
// read, never persisted.
type DailyInsight struct {
	Date           time.Time `json:"date"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	TimeSpent      int       `json:"time_spent"`
	SessionCount   int       `json:"session_count"`
}

// OverallProgress is the dashboard summary computed over the lookback window.
type OverallProgress struct {
	TotalQuestions         int `json:"total_questions"`
	CorrectAnswers         int `json:"correct_answers"`
	Accuracy               int `json:"accuracy"`
	AverageTimePerQuestion int `json:"average_time_per_question"`
	ConsistencyScore       int `json:"consistency_score"`
	TotalStudyTime         int `json:"total_study_time"`
	ReadinessScore         int `json:"readiness_score"`
}

// Weakness flags a topic for remedial focus.
type Weakness struct {
	Subject          string `json:"subject"`
	Topic            string `json:"topic"`
	Accuracy         int    `json:"accuracy"`
	TotalAttempts    int    `json:"total_attempts"`
	PerformanceScore int    `json:"performance_score"`
	Priority         string `json:"priority"`
}

// Recommendation is one ranked study suggestion.
type Recommendation struct {
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Action      string   `json:"action"`
	Accuracy    int      `json:"accuracy,omitempty"`
	Subject     string   `json:"subject,omitempty"`
	Topic       string   `json:"topic,omitempty"`
	Foundations []string `json:"foundations,omitempty"`
}

// Recommendation priorities, ordered high before medium before low.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)
