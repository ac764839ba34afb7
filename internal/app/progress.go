package app

import (
	"math"

	"ai-quiz-service/internal/domain"
)

// recentWindow bounds the recent-performance view.
const recentWindow = 10

// minAttemptsForTrend is how many attempts the improvement trend needs.
const minAttemptsForTrend = 4

// ComputeProgressStats aggregates an ordered quiz history (insertion order =
// chronological order) into summary statistics. Pure function of its input;
// an empty history yields zero counts and a nil improvement.
func ComputeProgressStats(history []domain.QuizResult) domain.ProgressStats {
	if len(history) == 0 {
		return domain.ProgressStats{
			RecentPerformance: []domain.RecentQuiz{},
			TopicPerformance:  map[string]domain.TopicStats{},
		}
	}

	total := len(history)
	best := 0
	for _, quiz := range history {
		if quiz.Percentage > best {
			best = quiz.Percentage
		}
	}

	recent := history
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	// Recent entries keep their original chronological order.
	recentPerformance := make([]domain.RecentQuiz, len(recent))
	for i, quiz := range recent {
		recentPerformance[i] = domain.RecentQuiz{
			Topic:      quiz.Topic,
			Percentage: quiz.Percentage,
			Date:       quiz.CompletedAt,
		}
	}

	// Group by case-folded topic; display casing comes from the first
	// recorded attempt of each group.
	topicPerformance := make(map[string]domain.TopicStats)
	for _, quiz := range history {
		key := TopicKey(quiz.Topic)
		stats, ok := topicPerformance[key]
		if !ok {
			stats = domain.TopicStats{Topic: quiz.Topic}
		}
		stats.Quizzes = append(stats.Quizzes, quiz)
		stats.TotalQuizzes++
		topicPerformance[key] = stats
	}
	for key, stats := range topicPerformance {
		stats.AverageScore = meanPercentage(stats.Quizzes)
		for _, quiz := range stats.Quizzes {
			if quiz.Percentage > stats.BestScore {
				stats.BestScore = quiz.Percentage
			}
		}
		topicPerformance[key] = stats
	}

	return domain.ProgressStats{
		TotalQuizzes:      total,
		AverageScore:      meanPercentage(history),
		BestScore:         best,
		TotalTopics:       len(topicPerformance),
		Improvement:       improvement(history),
		RecentPerformance: recentPerformance,
		TopicPerformance:  topicPerformance,
	}
}

// improvement splits the history at the floor of half its length and reports
// the rounded difference of the halves' mean percentages (positive means
// improving). Fewer than 4 attempts is too little signal: nil.
func improvement(history []domain.QuizResult) *int {
	if len(history) < minAttemptsForTrend {
		return nil
	}
	half := len(history) / 2
	delta := int(math.Round(rawMean(history[half:]) - rawMean(history[:half])))
	return &delta
}

func meanPercentage(quizzes []domain.QuizResult) int {
	return int(math.Round(rawMean(quizzes)))
}

func rawMean(quizzes []domain.QuizResult) float64 {
	if len(quizzes) == 0 {
		return 0
	}
	sum := 0
	for _, quiz := range quizzes {
		sum += quiz.Percentage
	}
	return float64(sum) / float64(len(quizzes))
}
