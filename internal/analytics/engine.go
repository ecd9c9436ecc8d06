package analytics

import (
	"fmt"
	"math"
	"sort"

	"prep-service/internal/models"
)

// TopicGuide is remedial material for one topic: prerequisite foundations
// and a short study tip.
type TopicGuide struct {
	Foundations []string
	Tips        string
}

// TopicLookup resolves a subject+topic to its guide. Implementations are
// read-only; a miss falls back to generic recommendation text.
type TopicLookup interface {
	Lookup(subject, topic string) (TopicGuide, bool)
}

// Engine turns a window of quiz history plus the per-topic aggregate into
// daily insights, an overall progress summary, weaknesses and ranked study
// recommendations. Every method degrades to empty or zero-valued results on
// missing input; the dashboard must always render.
type Engine struct {
	topics TopicLookup
}

// NewEngine creates an engine. lookup may be nil, in which case every topic
// recommendation uses the generic fallback text.
func NewEngine(lookup TopicLookup) *Engine {
	return &Engine{topics: lookup}
}

// Readiness scoring thresholds and weights. Coverage counts mastered topics
// (aggregate accuracy at or above masteryAccuracy), capped at coverageTopics.
const (
	minReadinessQuestions = 10
	masteryAccuracy       = 70.0
	coverageTopics        = 10

	accuracyWeight    = 0.6
	coverageWeight    = 0.25
	consistencyWeight = 0.15
)

// Aggregate groups quiz attempts into one insight per calendar date, sorted
// ascending so trend charts read oldest first.
func (e *Engine) Aggregate(history []models.QuizAttempt) []models.DailyInsight {
	buckets := make(map[string]*models.DailyInsight)
	for _, quiz := range history {
		ts := quiz.Timestamp.Time()
		if ts.IsZero() {
			continue
		}
		day := ts.Format("2006-01-02")
		bucket, ok := buckets[day]
		if !ok {
			bucket = &models.DailyInsight{
				Date: dateOnly(ts),
			}
			buckets[day] = bucket
		}
		bucket.TotalQuestions += quiz.TotalQuestions
		bucket.CorrectAnswers += quiz.CorrectCount
		bucket.TimeSpent += quiz.TimeSpent
		bucket.SessionCount++
	}

	insights := make([]models.DailyInsight, 0, len(buckets))
	for _, bucket := range buckets {
		insights = append(insights, *bucket)
	}
	sort.Slice(insights, func(i, j int) bool {
		return insights[i].Date.Before(insights[j].Date)
	})
	return insights
}

// Progress computes the overall summary over the insight window. The topic
// aggregate only feeds the readiness coverage term.
func (e *Engine) Progress(insights []models.DailyInsight, perf map[string]models.TopicPerformance) models.OverallProgress {
	var totalQuestions, correctAnswers, totalTime int
	for _, day := range insights {
		totalQuestions += day.TotalQuestions
		correctAnswers += day.CorrectAnswers
		totalTime += day.TimeSpent
	}

	progress := models.OverallProgress{
		TotalQuestions:   totalQuestions,
		CorrectAnswers:   correctAnswers,
		ConsistencyScore: e.consistency(insights),
		TotalStudyTime:   int(math.Round(float64(totalTime) / 60)),
	}
	if totalQuestions > 0 {
		progress.Accuracy = int(math.Round(float64(correctAnswers) / float64(totalQuestions) * 100))
		progress.AverageTimePerQuestion = int(math.Round(float64(totalTime) / float64(totalQuestions)))
	}
	progress.ReadinessScore = e.readiness(totalQuestions, progress.Accuracy, progress.ConsistencyScore, perf)
	return progress
}

// consistency is the share of window days with any activity, 0-100.
func (e *Engine) consistency(insights []models.DailyInsight) int {
	if len(insights) == 0 {
		return 0
	}
	activeDays := 0
	for _, day := range insights {
		if day.TotalQuestions > 0 {
			activeDays++
		}
	}
	totalDays := len(insights)
	if totalDays < 1 {
		totalDays = 1
	}
	return int(math.Round(float64(activeDays) / float64(totalDays) * 100))
}

// readiness is the composite 0-100 exam-preparedness estimate. Fewer than
// ten attempted questions in the window is insufficient data and scores 0,
// regardless of accuracy on those few.
func (e *Engine) readiness(totalQuestions, accuracy, consistency int, perf map[string]models.TopicPerformance) int {
	if totalQuestions < minReadinessQuestions {
		return 0
	}

	mastered := 0
	for _, topic := range perf {
		if topic.Accuracy >= masteryAccuracy {
			mastered++
		}
	}
	coverage := math.Min(100, float64(mastered)/coverageTopics*100)

	score := accuracyWeight*float64(accuracy) +
		coverageWeight*coverage +
		consistencyWeight*float64(consistency)
	return int(math.Round(score))
}

// Weaknesses ranks topics for remedial focus, worst performance score first,
// capped at ten. Topics with fewer than three attempts carry too little
// signal and are skipped.
func (e *Engine) Weaknesses(perf map[string]models.TopicPerformance) []models.Weakness {
	weaknesses := make([]models.Weakness, 0)
	for _, topic := range perf {
		if topic.Total < 3 {
			continue
		}
		confidence := topic.AvgConfidence
		if confidence == 0 {
			confidence = 0.5
		}
		performanceScore := topic.Accuracy * confidence

		priority := models.PriorityLow
		switch {
		case topic.Accuracy < 40 && topic.Total >= 5:
			priority = models.PriorityHigh
		case topic.Accuracy < 60 && topic.Total >= 3:
			priority = models.PriorityMedium
		}

		weaknesses = append(weaknesses, models.Weakness{
			Subject:          topic.Subject,
			Topic:            topic.Topic,
			Accuracy:         int(math.Round(topic.Accuracy)),
			TotalAttempts:    topic.Total,
			PerformanceScore: int(math.Round(performanceScore)),
			Priority:         priority,
		})
	}

	sort.SliceStable(weaknesses, func(i, j int) bool {
		return weaknesses[i].PerformanceScore < weaknesses[j].PerformanceScore
	})
	if len(weaknesses) > 10 {
		weaknesses = weaknesses[:10]
	}
	return weaknesses
}

// Recommend builds the ranked suggestion list from the overall summary and
// the top weaknesses. Ordering is a stable sort on priority so equal-priority
// suggestions keep their generation order.
func (e *Engine) Recommend(weaknesses []models.Weakness, overall models.OverallProgress) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0)

	if overall.Accuracy < 60 {
		recommendations = append(recommendations, models.Recommendation{
			Type:     "foundation",
			Priority: models.PriorityHigh,
			Title:    "Strengthen Fundamentals",
			Message:  "Focus on building strong foundational knowledge before tackling advanced topics.",
			Action:   "Review basic concepts in your weakest subjects",
		})
	}

	if overall.AverageTimePerQuestion > 90 {
		recommendations = append(recommendations, models.Recommendation{
			Type:     "time_management",
			Priority: models.PriorityMedium,
			Title:    "Improve Time Management",
			Message:  fmt.Sprintf("You're spending %ds per question on average.", overall.AverageTimePerQuestion),
			Action:   "Practice with timed sessions to improve speed",
		})
	}

	top := weaknesses
	if len(top) > 3 {
		top = top[:3]
	}
	for _, weakness := range top {
		recommendations = append(recommendations, e.topicRecommendation(weakness))
	}

	rank := map[string]int{models.PriorityHigh: 0, models.PriorityMedium: 1, models.PriorityLow: 2}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return rank[recommendations[i].Priority] < rank[recommendations[j].Priority]
	})
	return recommendations
}

// topicRecommendation picks message and action text by accuracy band, using
// the topic guide when the lookup hits and generic text when it misses.
func (e *Engine) topicRecommendation(weakness models.Weakness) models.Recommendation {
	var guide TopicGuide
	if e.topics != nil {
		guide, _ = e.topics.Lookup(weakness.Subject, weakness.Topic)
	}

	var message, action string
	switch {
	case weakness.Accuracy < 40:
		message = fmt.Sprintf("You're struggling with %s.", weakness.Topic)
		if len(guide.Foundations) > 0 {
			action = fmt.Sprintf("Review these foundations: %s.", joinComma(guide.Foundations))
		} else {
			action = fmt.Sprintf("Study %s basics and attempt easier questions first", weakness.Topic)
		}
	case weakness.Accuracy < 70:
		message = fmt.Sprintf("You need more practice with %s.", weakness.Topic)
		if guide.Tips != "" {
			action = fmt.Sprintf("Tip: %s", guide.Tips)
		} else {
			action = fmt.Sprintf("Practice more %s questions", weakness.Topic)
		}
	default:
		message = fmt.Sprintf("You're doing well with %s, aim for mastery.", weakness.Topic)
		action = fmt.Sprintf("Challenge yourself with advanced %s problems", weakness.Topic)
	}

	return models.Recommendation{
		Type:        "topic_focus",
		Priority:    weakness.Priority,
		Title:       fmt.Sprintf("%s: %s", weakness.Subject, weakness.Topic),
		Message:     message,
		Action:      action,
		Accuracy:    weakness.Accuracy,
		Subject:     weakness.Subject,
		Topic:       weakness.Topic,
		Foundations: guide.Foundations,
	}
}
