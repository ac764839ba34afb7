package genai

import (
	"context"
	"fmt"
	"strings"
)

// Provider is a generative-language-model backend. Implementations return the
// raw response text; downstream code treats it as untrusted and extracts the
// question set itself.
type Provider interface {
	// GenerateText sends the prompt and returns the model's text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider in logs.
	Name() string
}

// BuildPrompt renders the quiz-generation prompt for a topic. The rules ask
// for positive-only phrasing, exactly 4 options with a single correct one, an
// explanation per question, and present-day factual grounding.
func BuildPrompt(topic string, count int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Create %d high-quality multiple-choice quiz questions about %q. Follow these rules EXACTLY:\n\n", count, topic))
	sb.WriteString("1. Use POSITIVE questions - avoid \"NOT\", \"EXCEPT\", or negative phrasing\n")
	sb.WriteString("2. Each question should have exactly 4 answer options\n")
	sb.WriteString("3. Only ONE option should be clearly correct\n")
	sb.WriteString("4. Include a brief explanation for why the correct answer is right\n")
	sb.WriteString("5. Make questions factually accurate and educational\n")
	sb.WriteString("6. Use present-day knowledge and ensure questions are not too easy\n\n")
	sb.WriteString("Return ONLY valid JSON in this exact format:\n")
	sb.WriteString(`[
  {
    "id": 1,
    "question": "What is the capital city of France?",
    "options": ["London", "Paris", "Berlin", "Madrid"],
    "correctAnswer": 1,
    "explanation": "Paris is the capital and largest city of France."
  }
]
`)
	sb.WriteString("\nThe correctAnswer must be the index (0-3) of the correct option.\n")
	sb.WriteString("Make sure explanations are helpful and educational.\n")

	return sb.String()
}
