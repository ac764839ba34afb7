package genai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"ai-quiz-service/internal/domain"
)

// OpenAIClient is an alternate provider backed by the OpenAI chat-completion
// API. Unlike Gemini's nested candidate structure, the reply text arrives as
// the plain message content; both shapes feed the same extractor.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIClient builds a chat-completion provider for the given model.
func NewOpenAIClient(apiKey, model string, temperature float32, maxTokens int) *OpenAIClient {
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

// GenerateText sends the prompt as a single user message.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("call openai API: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
