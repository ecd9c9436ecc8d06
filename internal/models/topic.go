package models

import "time"

// TopicPerformance is the per-user running tally for one subject+topic key.
// It is updated incrementally as attempts arrive; Accuracy is derived and
// kept in step so dashboard reads never rescan raw history.
type TopicPerformance struct {
	Subject         string  `bson:"subject" json:"subject"`
	Topic           string  `bson:"topic" json:"topic"`
	Total           int     `bson:"total" json:"total"`
	Correct         int     `bson:"correct" json:"correct"`
	Accuracy        float64 `bson:"accuracy" json:"accuracy"`
	AvgConfidence   float64 `bson:"avg_confidence" json:"avgConfidence"`
	ConfidenceCount int     `bson:"confidence_count" json:"confidenceCount"`
}

// TopicKey builds the aggregate map key used in the user_stats document.
func TopicKey(subject, topic string) string {
	return subject + "-" + topic
}

// UserStats is the per-user aggregate document.
type UserStats struct {
	UserID           string                      `bson:"_id,omitempty" json:"user_id"`
	TopicPerformance map[string]TopicPerformance `bson:"topic_performance" json:"topic_performance"`
	LastUpdated      time.Time                   `bson:"last_updated" json:"last_updated"`
}
