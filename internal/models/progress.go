package models

import "time"

// UserProgress is a free-form per-user progress document maintained by the
// client (goal tracking, last studied subject, onboarding state).
type UserProgress struct {
	UserID      string                 `bson:"_id,omitempty" json:"user_id"`
	Fields      map[string]interface{} `bson:"fields" json:"fields"`
	LastUpdated time.Time              `bson:"last_updated" json:"last_updated"`
}
