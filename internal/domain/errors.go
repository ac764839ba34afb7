package domain

import "errors"

var (
	// ErrTopicRequired is returned when a generation request carries an empty
	// or whitespace-only topic. It is the only error surfaced to clients.
	ErrTopicRequired = errors.New("topic is required")
	// ErrCredentialMissing means no provider API key is configured.
	ErrCredentialMissing = errors.New("model provider credential is not configured")
	// ErrEmptyResponse means the provider replied without any text content.
	ErrEmptyResponse = errors.New("no text content in model response")
	// ErrNoQuestionArray means no JSON-array-of-objects substring was found
	// in the model response text.
	ErrNoQuestionArray = errors.New("no question array found in model response")
	// ErrUnparsableQuestions means no candidate array substring parsed as JSON.
	ErrUnparsableQuestions = errors.New("question array did not parse as JSON")
	// ErrNoQuestions means the parsed question array was empty.
	ErrNoQuestions = errors.New("model response contained no questions")
)
