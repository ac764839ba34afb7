package app

import (
	"fmt"
	"math"
	"strings"

	"ai-quiz-service/internal/domain"
)

// MaxQuestions caps a normalized quiz; longer upstream arrays are truncated,
// shorter ones are never padded.
const MaxQuestions = 10

// fieldRule pairs a validator with the default constructed when the upstream
// value fails it. Each field degrades independently: a malformed value gets
// its default while well-formed siblings pass through untouched.
type fieldRule[T any] struct {
	parse    func(v any) (T, bool)
	fallback func(topic string, index int) T
}

func (r fieldRule[T]) apply(v any, topic string, index int) T {
	if parsed, ok := r.parse(v); ok {
		return parsed
	}
	return r.fallback(topic, index)
}

// The defaulting table, one rule per canonical field. Upstream ids are not a
// rule: positions are always reassigned 1-based.
var (
	questionTextRule = fieldRule[string]{
		parse: nonEmptyString,
		fallback: func(topic string, _ int) string {
			return fmt.Sprintf("Question about %s", topic)
		},
	}
	optionsRule = fieldRule[[]string]{
		parse: fourStrings,
		fallback: func(topic string, _ int) []string {
			return []string{
				fmt.Sprintf("Option A about %s", topic),
				fmt.Sprintf("Option B about %s", topic),
				fmt.Sprintf("Option C about %s", topic),
				fmt.Sprintf("Option D about %s", topic),
			}
		},
	}
	correctAnswerRule = fieldRule[int]{
		parse:    answerIndex,
		fallback: func(string, int) int { return 0 },
	}
	explanationRule = fieldRule[string]{
		parse: nonEmptyString,
		fallback: func(topic string, _ int) string {
			return fmt.Sprintf("This is the correct answer about %s.", topic)
		},
	}
)

// NormalizeQuestions maps parsed upstream objects onto canonical Questions.
// The output always satisfies the shape invariant (4 options, answer index in
// [0,3]); only an empty input is an error.
func NormalizeQuestions(raw []map[string]any, topic string) ([]domain.Question, error) {
	if len(raw) == 0 {
		return nil, domain.ErrNoQuestions
	}
	if len(raw) > MaxQuestions {
		raw = raw[:MaxQuestions]
	}

	questions := make([]domain.Question, len(raw))
	for i, src := range raw {
		questions[i] = domain.Question{
			ID:            i + 1,
			Question:      questionTextRule.apply(src["question"], topic, i),
			Options:       optionsRule.apply(src["options"], topic, i),
			CorrectAnswer: correctAnswerRule.apply(src["correctAnswer"], topic, i),
			Explanation:   explanationRule.apply(src["explanation"], topic, i),
		}
	}
	return questions, nil
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// fourStrings accepts only an array of exactly 4 strings; wrong length or
// non-string members reject the whole value.
func fourStrings(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok || len(items) != 4 {
		return nil, false
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// answerIndex accepts an integral JSON number in [0,3].
func answerIndex(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < 0 || f > 3 {
		return 0, false
	}
	return int(f), true
}
