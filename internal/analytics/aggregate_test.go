package analytics

import (
	"math"
	"testing"

	"prep-service/internal/models"
)

func attempt(subject, topic string, correct bool, confidence float64) models.QuestionAttempt {
	return models.QuestionAttempt{
		UserID:     "user-1",
		Subject:    subject,
		Topic:      topic,
		Correct:    correct,
		Confidence: confidence,
	}
}

func TestApplyAttemptsBuildsAggregate(t *testing.T) {
	perf := ApplyAttempts(nil, []models.QuestionAttempt{
		attempt("Mathematics", "Algebra", true, 0.9),
		attempt("Mathematics", "Algebra", false, 0.5),
		attempt("Mathematics", "Algebra", true, 0.7),
		attempt("English Language", "Grammar", true, 0),
	})

	algebra := perf["Mathematics-Algebra"]
	if algebra.Total != 3 || algebra.Correct != 2 {
		t.Errorf("Expected 2/3 on Algebra, got %d/%d", algebra.Correct, algebra.Total)
	}
	wantAccuracy := 2.0 / 3.0 * 100
	if math.Abs(algebra.Accuracy-wantAccuracy) > 0.01 {
		t.Errorf("Expected accuracy %.2f, got %.2f", wantAccuracy, algebra.Accuracy)
	}
	wantConfidence := (0.9 + 0.5 + 0.7) / 3
	if math.Abs(algebra.AvgConfidence-wantConfidence) > 0.0001 {
		t.Errorf("Expected avg confidence %.4f, got %.4f", wantConfidence, algebra.AvgConfidence)
	}

	grammar := perf["English Language-Grammar"]
	if grammar.Total != 1 || grammar.Correct != 1 {
		t.Errorf("Expected 1/1 on Grammar, got %d/%d", grammar.Correct, grammar.Total)
	}
	// zero confidence does not move the running average
	if grammar.ConfidenceCount != 0 || grammar.AvgConfidence != 0 {
		t.Errorf("Expected untouched confidence, got count=%d avg=%.2f", grammar.ConfidenceCount, grammar.AvgConfidence)
	}
}

func TestApplyAttemptsIsIncremental(t *testing.T) {
	perf := ApplyAttempts(nil, []models.QuestionAttempt{
		attempt("Mathematics", "Algebra", true, 0.8),
		attempt("Mathematics", "Algebra", true, 0.6),
	})
	perf = ApplyAttempts(perf, []models.QuestionAttempt{
		attempt("Mathematics", "Algebra", false, 0.4),
	})

	algebra := perf["Mathematics-Algebra"]
	if algebra.Total != 3 || algebra.Correct != 2 {
		t.Errorf("Expected 2/3 after second batch, got %d/%d", algebra.Correct, algebra.Total)
	}
	wantConfidence := (0.8 + 0.6 + 0.4) / 3
	if math.Abs(algebra.AvgConfidence-wantConfidence) > 0.0001 {
		t.Errorf("Expected avg confidence %.4f, got %.4f", wantConfidence, algebra.AvgConfidence)
	}
}

func TestApplyAttemptsSkipsUnkeyedAttempts(t *testing.T) {
	perf := ApplyAttempts(nil, []models.QuestionAttempt{
		attempt("", "Algebra", true, 0.8),
		attempt("Mathematics", "", true, 0.8),
	})
	if len(perf) != 0 {
		t.Errorf("Expected attempts without subject+topic to be skipped, got %d entries", len(perf))
	}
}

func TestBuildFromAttempts(t *testing.T) {
	perf := BuildFromAttempts([]models.QuestionAttempt{
		attempt("Mathematics", "Algebra", true, 0.9),
		attempt("Mathematics", "Geometry", false, 0.3),
	})
	if len(perf) != 2 {
		t.Fatalf("Expected 2 topics, got %d", len(perf))
	}
	if perf["Mathematics-Geometry"].Accuracy != 0 {
		t.Errorf("Expected 0 accuracy for Geometry, got %.1f", perf["Mathematics-Geometry"].Accuracy)
	}
}
