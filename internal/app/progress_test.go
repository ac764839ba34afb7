package app

import (
	"reflect"
	"testing"
	"time"

	"ai-quiz-service/internal/domain"
)

func attempt(topic string, percentage int, day int) domain.QuizResult {
	completed := time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
	return domain.QuizResult{
		ID:             completed.UnixMilli(),
		Topic:          topic,
		Score:          percentage / 10,
		TotalQuestions: 10,
		Percentage:     percentage,
		CompletedAt:    completed,
	}
}

func TestProgressStatsEmptyHistory(t *testing.T) {
	stats := ComputeProgressStats(nil)

	if stats.TotalQuizzes != 0 || stats.AverageScore != 0 || stats.BestScore != 0 || stats.TotalTopics != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.Improvement != nil {
		t.Fatalf("expected nil improvement, got %d", *stats.Improvement)
	}
	if len(stats.RecentPerformance) != 0 || len(stats.TopicPerformance) != 0 {
		t.Fatalf("expected empty collections, got %+v", stats)
	}

	// Idempotent under repeated calls with unchanged input.
	if !reflect.DeepEqual(stats, ComputeProgressStats(nil)) {
		t.Fatalf("repeated calls must agree")
	}
}

func TestProgressStatsAverageAndBest(t *testing.T) {
	history := []domain.QuizResult{
		attempt("math", 70, 1),
		attempt("math", 85, 2),
	}
	stats := ComputeProgressStats(history)

	if stats.TotalQuizzes != 2 {
		t.Fatalf("expected 2 quizzes, got %d", stats.TotalQuizzes)
	}
	if stats.AverageScore != 78 { // round(77.5)
		t.Fatalf("expected average 78, got %d", stats.AverageScore)
	}
	if stats.BestScore != 85 {
		t.Fatalf("expected best 85, got %d", stats.BestScore)
	}
}

func TestProgressStatsImprovement(t *testing.T) {
	history := []domain.QuizResult{
		attempt("a", 50, 1),
		attempt("b", 50, 2),
		attempt("c", 90, 3),
		attempt("d", 90, 4),
	}
	stats := ComputeProgressStats(history)

	if stats.Improvement == nil || *stats.Improvement != 40 {
		t.Fatalf("expected improvement +40, got %v", stats.Improvement)
	}

	// Under 4 attempts there is no trend.
	if got := ComputeProgressStats(history[:3]).Improvement; got != nil {
		t.Fatalf("expected nil improvement for 3 attempts, got %d", *got)
	}
}

func TestProgressStatsImprovementOddSplit(t *testing.T) {
	// 5 attempts split at floor(5/2)=2: first half [40,60], second [50,70,90].
	history := []domain.QuizResult{
		attempt("a", 40, 1),
		attempt("a", 60, 2),
		attempt("a", 50, 3),
		attempt("a", 70, 4),
		attempt("a", 90, 5),
	}
	stats := ComputeProgressStats(history)

	if stats.Improvement == nil || *stats.Improvement != 20 {
		t.Fatalf("expected improvement +20, got %v", stats.Improvement)
	}
}

func TestProgressStatsTopicGroupingIsCaseInsensitive(t *testing.T) {
	history := []domain.QuizResult{
		attempt("History", 60, 1),
		attempt("history", 80, 2),
	}
	stats := ComputeProgressStats(history)

	if stats.TotalTopics != 1 {
		t.Fatalf("expected 1 distinct topic, got %d", stats.TotalTopics)
	}
	rollup, ok := stats.TopicPerformance["history"]
	if !ok {
		t.Fatalf("expected rollup under case-folded key, got %v", stats.TopicPerformance)
	}
	if rollup.Topic != "History" {
		t.Fatalf("display topic must keep first-recorded casing, got %q", rollup.Topic)
	}
	if rollup.TotalQuizzes != 2 || len(rollup.Quizzes) != 2 {
		t.Fatalf("expected both attempts in the group, got %+v", rollup)
	}
	if rollup.AverageScore != 70 || rollup.BestScore != 80 {
		t.Fatalf("unexpected rollup math: %+v", rollup)
	}
}

func TestProgressStatsRecentWindow(t *testing.T) {
	var history []domain.QuizResult
	for i := 0; i < 13; i++ {
		history = append(history, attempt("go", 50+i, i+1))
	}
	stats := ComputeProgressStats(history)

	if len(stats.RecentPerformance) != 10 {
		t.Fatalf("expected 10 recent entries, got %d", len(stats.RecentPerformance))
	}
	// Window is the last 10 in original chronological order.
	if stats.RecentPerformance[0].Percentage != 53 {
		t.Fatalf("expected window to start at the 4th attempt, got %d", stats.RecentPerformance[0].Percentage)
	}
	if stats.RecentPerformance[9].Percentage != 62 {
		t.Fatalf("expected window to end at the latest attempt, got %d", stats.RecentPerformance[9].Percentage)
	}
}
