package analytics

import (
	"strings"
	"time"

	"prep-service/internal/models"
)

// ApplyAttempts folds new question attempts into the per-topic running
// aggregate. Counters only move forward; the confidence average is rebuilt
// from its running count so batches of any size fold in exactly. Attempts
// with no subject or topic carry no aggregation key and are skipped.
func ApplyAttempts(perf map[string]models.TopicPerformance, attempts []models.QuestionAttempt) map[string]models.TopicPerformance {
	if perf == nil {
		perf = make(map[string]models.TopicPerformance)
	}
	for _, attempt := range attempts {
		if attempt.Subject == "" || attempt.Topic == "" {
			continue
		}
		key := models.TopicKey(attempt.Subject, attempt.Topic)
		topic, ok := perf[key]
		if !ok {
			topic = models.TopicPerformance{
				Subject: attempt.Subject,
				Topic:   attempt.Topic,
			}
		}

		topic.Total++
		if attempt.Correct {
			topic.Correct++
		}
		if attempt.Confidence > 0 {
			runningTotal := topic.AvgConfidence * float64(topic.ConfidenceCount)
			topic.ConfidenceCount++
			topic.AvgConfidence = (runningTotal + attempt.Confidence) / float64(topic.ConfidenceCount)
		}
		topic.Accuracy = float64(topic.Correct) / float64(topic.Total) * 100

		perf[key] = topic
	}
	return perf
}

// BuildFromAttempts recomputes a full aggregate from raw history. Only used
// to bootstrap users whose stats predate the aggregate document.
func BuildFromAttempts(attempts []models.QuestionAttempt) map[string]models.TopicPerformance {
	return ApplyAttempts(make(map[string]models.TopicPerformance), attempts)
}

func dateOnly(ts time.Time) time.Time {
	year, month, day := ts.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, ts.Location())
}

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
