package app

import (
	"errors"
	"testing"

	"ai-quiz-service/internal/domain"
)

func TestExtractQuestionsFromFencedResponse(t *testing.T) {
	text := "Here are your questions:\n```json\n[{\"question\": \"Q1\", \"correctAnswer\": 2}]\n```\nGood luck!"

	parsed, err := ExtractQuestions(text)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 question object, got %d", len(parsed))
	}
	if parsed[0]["question"] != "Q1" {
		t.Fatalf("unexpected question field: %v", parsed[0]["question"])
	}
}

func TestExtractQuestionsSelectsLongestCandidate(t *testing.T) {
	// Two array candidates: the shorter truncated-looking one first, the
	// longer complete one second. Ranking is longest first, then
	// first-occurring on ties.
	text := `Partial attempt: [{"question": "short"}]
Full set: [{"question": "one", "correctAnswer": 0}, {"question": "two", "correctAnswer": 1}]`

	parsed, err := ExtractQuestions(text)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected the longer candidate with 2 objects, got %d", len(parsed))
	}
	if parsed[0]["question"] != "one" {
		t.Fatalf("expected first question of longer candidate, got %v", parsed[0]["question"])
	}
}

func TestExtractQuestionsToleratesBracketsInsideStrings(t *testing.T) {
	text := `[{"question": "What does [1, 2] mean?", "explanation": "brackets } and ] in text"}]`

	parsed, err := ExtractQuestions(text)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 object, got %d", len(parsed))
	}
}

func TestExtractQuestionsNoArray(t *testing.T) {
	_, err := ExtractQuestions("I'm sorry, I can't produce a quiz about that.")
	if !errors.Is(err, domain.ErrNoQuestionArray) {
		t.Fatalf("expected ErrNoQuestionArray, got %v", err)
	}
}

func TestExtractQuestionsUnparsableCandidate(t *testing.T) {
	// Bracket-balanced but not valid JSON.
	_, err := ExtractQuestions(`[{"question": oops}]`)
	if !errors.Is(err, domain.ErrUnparsableQuestions) {
		t.Fatalf("expected ErrUnparsableQuestions, got %v", err)
	}
}

func TestExtractQuestionsIgnoresArraysOfNonObjects(t *testing.T) {
	_, err := ExtractQuestions(`The options were ["a", "b", "c", "d"] overall.`)
	if !errors.Is(err, domain.ErrNoQuestionArray) {
		t.Fatalf("expected ErrNoQuestionArray for array of strings, got %v", err)
	}
}
