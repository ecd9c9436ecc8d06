package analytics

import (
	"fmt"
	"testing"
	"time"

	"prep-service/internal/models"
)

// stubLookup resolves only Mathematics/Algebra.
type stubLookup struct{}

func (stubLookup) Lookup(subject, topic string) (TopicGuide, bool) {
	if subject == "Mathematics" && topic == "Algebra" {
		return TopicGuide{
			Foundations: []string{"Integers", "Order of Operations"},
			Tips:        "Practice simplifying expressions.",
		}, true
	}
	return TopicGuide{}, false
}

func quizOn(day time.Time, total, correct, timeSpent int) models.QuizAttempt {
	return models.QuizAttempt{
		UserID:         "user-1",
		Mode:           models.ModePractice,
		TotalQuestions: total,
		CorrectCount:   correct,
		TimeSpent:      timeSpent,
		Timestamp:      models.FlexTime(day),
	}
}

func TestAggregateEmptyHistory(t *testing.T) {
	engine := NewEngine(nil)
	insights := engine.Aggregate(nil)
	if len(insights) != 0 {
		t.Errorf("Expected no insights for empty history, got %d", len(insights))
	}
}

func TestAggregateGroupsByCalendarDate(t *testing.T) {
	engine := NewEngine(nil)
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 5, 3, 20, 0, 0, 0, time.UTC)

	// Most recent first, like the repository returns them
	history := []models.QuizAttempt{
		quizOn(day2, 5, 4, 100),
		quizOn(day1.Add(8*time.Hour), 10, 6, 200),
		quizOn(day1, 10, 8, 300),
	}

	insights := engine.Aggregate(history)
	if len(insights) != 2 {
		t.Fatalf("Expected 2 insight days, got %d", len(insights))
	}

	// Oldest first
	first := insights[0]
	if !first.Date.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected first insight on May 1, got %v", first.Date)
	}
	if first.TotalQuestions != 20 || first.CorrectAnswers != 14 || first.TimeSpent != 500 {
		t.Errorf("Unexpected day totals: %+v", first)
	}
	if first.SessionCount != 2 {
		t.Errorf("Expected 2 sessions on May 1, got %d", first.SessionCount)
	}
	if insights[1].SessionCount != 1 {
		t.Errorf("Expected 1 session on May 3, got %d", insights[1].SessionCount)
	}
}

func TestProgressEmptyWindow(t *testing.T) {
	engine := NewEngine(nil)
	progress := engine.Progress(nil, nil)
	if progress.Accuracy != 0 {
		t.Errorf("Expected accuracy 0, got %d", progress.Accuracy)
	}
	if progress.ReadinessScore != 0 {
		t.Errorf("Expected readiness 0, got %d", progress.ReadinessScore)
	}
	if progress.AverageTimePerQuestion != 0 || progress.TotalStudyTime != 0 || progress.ConsistencyScore != 0 {
		t.Errorf("Expected zero-valued progress, got %+v", progress)
	}
}

func TestProgressSingleDay(t *testing.T) {
	engine := NewEngine(nil)
	insights := []models.DailyInsight{
		{
			Date:           time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			TotalQuestions: 10,
			CorrectAnswers: 8,
			TimeSpent:      300,
			SessionCount:   1,
		},
	}

	progress := engine.Progress(insights, nil)
	if progress.Accuracy != 80 {
		t.Errorf("Expected accuracy 80, got %d", progress.Accuracy)
	}
	if progress.AverageTimePerQuestion != 30 {
		t.Errorf("Expected 30s per question, got %d", progress.AverageTimePerQuestion)
	}
	if progress.TotalStudyTime != 5 {
		t.Errorf("Expected 5 minutes study time, got %d", progress.TotalStudyTime)
	}
	if progress.ConsistencyScore != 100 {
		t.Errorf("Expected consistency 100, got %d", progress.ConsistencyScore)
	}
	// 10 questions clears the data floor; no mastered topics so coverage is 0:
	// 0.6*80 + 0.25*0 + 0.15*100 = 63
	if progress.ReadinessScore != 63 {
		t.Errorf("Expected readiness 63, got %d", progress.ReadinessScore)
	}
}

func TestReadinessRequiresTenQuestions(t *testing.T) {
	engine := NewEngine(nil)
	insights := []models.DailyInsight{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), TotalQuestions: 3, CorrectAnswers: 3, TimeSpent: 60},
	}
	perf := map[string]models.TopicPerformance{
		"Mathematics-Algebra": {Subject: "Mathematics", Topic: "Algebra", Total: 3, Correct: 1, Accuracy: 33.3},
	}

	progress := engine.Progress(insights, perf)
	if progress.Accuracy != 100 {
		t.Errorf("Expected accuracy 100, got %d", progress.Accuracy)
	}
	if progress.ReadinessScore != 0 {
		t.Errorf("Expected readiness 0 under the data floor, got %d", progress.ReadinessScore)
	}
}

func TestReadinessCoverageCountsMasteredTopics(t *testing.T) {
	engine := NewEngine(nil)
	insights := []models.DailyInsight{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), TotalQuestions: 100, CorrectAnswers: 80, TimeSpent: 1000},
	}

	perf := map[string]models.TopicPerformance{}
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("Mathematics-Topic%d", i)
		perf[key] = models.TopicPerformance{Subject: "Mathematics", Topic: key, Total: 10, Correct: 8, Accuracy: 80}
	}
	// An attempted-but-weak topic must not move coverage
	perf["Mathematics-Weak"] = models.TopicPerformance{Subject: "Mathematics", Topic: "Weak", Total: 10, Correct: 2, Accuracy: 20}

	progress := engine.Progress(insights, perf)
	// 0.6*80 + 0.25*100 + 0.15*100 = 88
	if progress.ReadinessScore != 88 {
		t.Errorf("Expected readiness 88, got %d", progress.ReadinessScore)
	}
}

func TestWeaknessesFilterSortAndCap(t *testing.T) {
	engine := NewEngine(nil)

	perf := map[string]models.TopicPerformance{
		"Mathematics-TooFew": {Subject: "Mathematics", Topic: "TooFew", Total: 2, Correct: 0, Accuracy: 0},
	}
	for i := 0; i < 12; i++ {
		key := fmt.Sprintf("Mathematics-Topic%d", i)
		perf[key] = models.TopicPerformance{
			Subject:       "Mathematics",
			Topic:         fmt.Sprintf("Topic%d", i),
			Total:         6,
			Correct:       i % 6,
			Accuracy:      float64(i%6) / 6 * 100,
			AvgConfidence: 0.8,
		}
	}

	weaknesses := engine.Weaknesses(perf)
	if len(weaknesses) != 10 {
		t.Fatalf("Expected 10 weaknesses, got %d", len(weaknesses))
	}
	for _, weakness := range weaknesses {
		if weakness.Topic == "TooFew" {
			t.Error("Topic with fewer than 3 attempts should be excluded")
		}
	}
	for i := 1; i < len(weaknesses); i++ {
		if weaknesses[i].PerformanceScore < weaknesses[i-1].PerformanceScore {
			t.Errorf("Weaknesses not sorted ascending at %d: %d < %d",
				i, weaknesses[i].PerformanceScore, weaknesses[i-1].PerformanceScore)
		}
	}
}

func TestWeaknessPriorities(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name         string
		total        int
		accuracy     float64
		wantPriority string
	}{
		{"low accuracy high volume", 5, 30, models.PriorityHigh},
		{"low accuracy low volume", 3, 30, models.PriorityMedium},
		{"middling accuracy", 4, 55, models.PriorityMedium},
		{"strong topic", 8, 85, models.PriorityLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			perf := map[string]models.TopicPerformance{
				"Mathematics-Algebra": {
					Subject:  "Mathematics",
					Topic:    "Algebra",
					Total:    tc.total,
					Accuracy: tc.accuracy,
				},
			}
			weaknesses := engine.Weaknesses(perf)
			if len(weaknesses) != 1 {
				t.Fatalf("Expected 1 weakness, got %d", len(weaknesses))
			}
			if weaknesses[0].Priority != tc.wantPriority {
				t.Errorf("Expected priority %s, got %s", tc.wantPriority, weaknesses[0].Priority)
			}
		})
	}
}

func TestWeaknessDefaultConfidence(t *testing.T) {
	engine := NewEngine(nil)
	perf := map[string]models.TopicPerformance{
		"Mathematics-Algebra": {Subject: "Mathematics", Topic: "Algebra", Total: 4, Correct: 2, Accuracy: 50},
	}
	weaknesses := engine.Weaknesses(perf)
	if len(weaknesses) != 1 {
		t.Fatalf("Expected 1 weakness, got %d", len(weaknesses))
	}
	// missing confidence falls back to 0.5: 50 * 0.5 = 25
	if weaknesses[0].PerformanceScore != 25 {
		t.Errorf("Expected performance score 25, got %d", weaknesses[0].PerformanceScore)
	}
}

func TestRecommendGlobalRules(t *testing.T) {
	engine := NewEngine(nil)
	overall := models.OverallProgress{Accuracy: 45, AverageTimePerQuestion: 120}

	recommendations := engine.Recommend(nil, overall)
	if len(recommendations) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recommendations))
	}
	if recommendations[0].Type != "foundation" || recommendations[0].Priority != models.PriorityHigh {
		t.Errorf("Expected high-priority foundation first, got %+v", recommendations[0])
	}
	if recommendations[1].Type != "time_management" {
		t.Errorf("Expected time management second, got %+v", recommendations[1])
	}
}

func TestRecommendTopicBands(t *testing.T) {
	engine := NewEngine(stubLookup{})

	weaknesses := []models.Weakness{
		{Subject: "Mathematics", Topic: "Algebra", Accuracy: 30, Priority: models.PriorityHigh},
		{Subject: "Mathematics", Topic: "Geometry", Accuracy: 55, Priority: models.PriorityMedium},
		{Subject: "English Language", Topic: "Grammar", Accuracy: 80, Priority: models.PriorityLow},
		{Subject: "Mathematics", Topic: "Numbers", Accuracy: 20, Priority: models.PriorityHigh},
	}
	overall := models.OverallProgress{Accuracy: 75, AverageTimePerQuestion: 40}

	recommendations := engine.Recommend(weaknesses, overall)
	// only the top 3 weaknesses, no global rules triggered
	if len(recommendations) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(recommendations))
	}

	// struggling band with a hierarchy hit lists foundations
	algebra := recommendations[0]
	if algebra.Topic != "Algebra" {
		t.Fatalf("Expected Algebra first, got %s", algebra.Topic)
	}
	if algebra.Action != "Review these foundations: Integers, Order of Operations." {
		t.Errorf("Unexpected struggling action: %q", algebra.Action)
	}
	if len(algebra.Foundations) != 2 {
		t.Errorf("Expected foundations attached, got %v", algebra.Foundations)
	}

	// practice band with a hierarchy miss uses generic text
	geometry := recommendations[1]
	if geometry.Topic != "Geometry" {
		t.Fatalf("Expected Geometry second, got %s", geometry.Topic)
	}
	if geometry.Action != "Practice more Geometry questions" {
		t.Errorf("Unexpected practice action: %q", geometry.Action)
	}

	// mastery band
	grammar := recommendations[2]
	if grammar.Message != "You're doing well with Grammar, aim for mastery." {
		t.Errorf("Unexpected mastery message: %q", grammar.Message)
	}
}

func TestRecommendOrderingIsStableByPriority(t *testing.T) {
	engine := NewEngine(nil)

	weaknesses := []models.Weakness{
		{Subject: "Mathematics", Topic: "Statistics", Accuracy: 65, Priority: models.PriorityLow},
		{Subject: "Mathematics", Topic: "Algebra", Accuracy: 30, Priority: models.PriorityHigh},
		{Subject: "Mathematics", Topic: "Geometry", Accuracy: 50, Priority: models.PriorityMedium},
	}
	overall := models.OverallProgress{Accuracy: 50, AverageTimePerQuestion: 100}

	recommendations := engine.Recommend(weaknesses, overall)
	wantOrder := []string{
		models.PriorityHigh, models.PriorityHigh,
		models.PriorityMedium, models.PriorityMedium,
		models.PriorityLow,
	}
	if len(recommendations) != len(wantOrder) {
		t.Fatalf("Expected %d recommendations, got %d", len(wantOrder), len(recommendations))
	}
	for i, want := range wantOrder {
		if recommendations[i].Priority != want {
			t.Errorf("Position %d: expected priority %s, got %s", i, want, recommendations[i].Priority)
		}
	}
	// the global foundation rule fired before the Algebra weakness; stable
	// sort keeps that order inside the high band
	if recommendations[0].Type != "foundation" || recommendations[1].Topic != "Algebra" {
		t.Errorf("Expected foundation then Algebra in the high band, got %s then %s",
			recommendations[0].Type, recommendations[1].Topic)
	}
}
