package domain

import "time"

// Source tags where a quiz's questions came from.
type Source string

const (
	// SourcePrimary means the questions were produced by the model provider.
	SourcePrimary Source = "primary"
	// SourceBackup means the deterministic template generator produced them.
	SourceBackup Source = "backup"
)

// Question is the canonical question shape every generation path must
// produce: exactly 4 options and a correct-answer index in [0,3].
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // 0-based index into Options
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is a generated question set together with its provenance.
type Quiz struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
	Source    Source     `json:"source"`
	CreatedAt time.Time  `json:"createdAt"`
}

// QuizResult is one finished attempt as the client records it. Results are
// created once at submission and never mutated; the ordered history they form
// lives in client-local storage and is only read here for aggregation.
type QuizResult struct {
	ID             int64          `json:"id"` // time-derived, assigned by the client
	Topic          string         `json:"topic"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Percentage     int            `json:"percentage"`
	CompletedAt    time.Time      `json:"completedAt"`
	TimeTaken      *int           `json:"timeTaken"` // seconds, nil when not tracked
	IsBackupSource bool           `json:"isBackupSource"`
	Questions      []Question     `json:"questions,omitempty"`
	UserAnswers    map[string]int `json:"userAnswers,omitempty"` // question index (stringified) -> chosen option
}

// NewQuizResult builds an attempt record with the derived percentage filled in.
func NewQuizResult(topic string, score, totalQuestions int, completedAt time.Time, backup bool) QuizResult {
	percentage := 0
	if totalQuestions > 0 {
		percentage = RoundPercent(score, totalQuestions)
	}
	return QuizResult{
		ID:             completedAt.UnixMilli(),
		Topic:          topic,
		Score:          score,
		TotalQuestions: totalQuestions,
		Percentage:     percentage,
		CompletedAt:    completedAt,
		IsBackupSource: backup,
	}
}

// RoundPercent computes round(100 * score / total) with half rounding up.
func RoundPercent(score, total int) int {
	return (200*score + total) / (2 * total)
}

// RecentQuiz is one entry of the recent-performance window.
type RecentQuiz struct {
	Topic      string    `json:"topic"`
	Percentage int       `json:"percentage"`
	Date       time.Time `json:"date"`
}

// TopicStats is the rollup for a single case-folded topic. Topic keeps the
// display casing of the first recorded attempt.
type TopicStats struct {
	Topic        string       `json:"topic"`
	Quizzes      []QuizResult `json:"quizzes"`
	AverageScore int          `json:"averageScore"`
	BestScore    int          `json:"bestScore"`
	TotalQuizzes int          `json:"totalQuizzes"`
}

// ProgressStats is the derived statistics view over a quiz history. It is
// recomputed on demand and never persisted.
type ProgressStats struct {
	TotalQuizzes      int                   `json:"totalQuizzes"`
	AverageScore      int                   `json:"averageScore"`
	BestScore         int                   `json:"bestScore"`
	TotalTopics       int                   `json:"totalTopics"`
	Improvement       *int                  `json:"improvement"` // nil under 4 attempts
	RecentPerformance []RecentQuiz          `json:"recentPerformance"`
	TopicPerformance  map[string]TopicStats `json:"topicPerformance"`
}
