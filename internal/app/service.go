package app

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-quiz-service/internal/domain"
	"ai-quiz-service/internal/genai"
)

// GenerateFunc produces a quiz on a cache miss.
type GenerateFunc func(ctx context.Context) GeneratedQuiz

// QuizCache reuses primary-sourced quizzes keyed by case-folded topic
// (in-memory, Redis, etc). Implementations must never fail a request: a
// broken cache degrades to calling generate directly. Backup-sourced quizzes
// are never cached.
type QuizCache interface {
	GetOrGenerate(ctx context.Context, key string, generate GenerateFunc) GeneratedQuiz
}

// GeneratedQuiz pairs a quiz with the AI-path failure that selected the
// fallback, when there was one.
type GeneratedQuiz struct {
	domain.Quiz
	FallbackCause error
}

// QuizService is the generation boundary: it validates the topic, runs the
// model path, and absorbs every model-path failure into the deterministic
// fallback. Nothing below this boundary can terminate a request.
type QuizService struct {
	provider genai.Provider // nil when no credential is configured
	cache    QuizCache      // nil disables caching
	count    int
	now      func() time.Time
	newID    func() string
}

// Option customizes a QuizService.
type Option func(*QuizService)

// WithCache enables quiz caching.
func WithCache(cache QuizCache) Option {
	return func(s *QuizService) { s.cache = cache }
}

// WithClock is test-only for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *QuizService) { s.now = now }
}

// WithIDGenerator is test-only for deterministic quiz IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *QuizService) { s.newID = newID }
}

// NewQuizService builds the service. A nil provider models a missing
// credential: every generation goes straight to the fallback.
func NewQuizService(provider genai.Provider, opts ...Option) *QuizService {
	s := &QuizService{
		provider: provider,
		count:    DefaultQuestionCount,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a quiz for the topic. The only error it returns is
// ErrTopicRequired; any model-path failure is logged, recorded as the
// fallback cause, and answered with backup questions instead.
func (s *QuizService) Generate(ctx context.Context, topic string) (GeneratedQuiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return GeneratedQuiz{}, domain.ErrTopicRequired
	}

	if s.cache != nil {
		return s.cache.GetOrGenerate(ctx, TopicKey(topic), func(ctx context.Context) GeneratedQuiz {
			return s.generate(ctx, topic)
		}), nil
	}
	return s.generate(ctx, topic), nil
}

// generate runs the model path and absorbs any failure into the fallback.
func (s *QuizService) generate(ctx context.Context, topic string) GeneratedQuiz {
	quiz, err := s.generatePrimary(ctx, topic)
	if err != nil {
		log.Printf("model path failed for topic %q, using backup generator: %v", topic, err)
		return GeneratedQuiz{Quiz: s.backupQuiz(topic), FallbackCause: err}
	}
	return GeneratedQuiz{Quiz: quiz}
}

// generatePrimary runs the model path: one provider call, no retries, then
// extraction and normalization of the untrusted reply text.
func (s *QuizService) generatePrimary(ctx context.Context, topic string) (domain.Quiz, error) {
	if s.provider == nil {
		return domain.Quiz{}, domain.ErrCredentialMissing
	}

	text, err := s.provider.GenerateText(ctx, genai.BuildPrompt(topic, s.count))
	if err != nil {
		return domain.Quiz{}, err
	}

	raw, err := ExtractQuestions(text)
	if err != nil {
		return domain.Quiz{}, err
	}

	questions, err := NormalizeQuestions(raw, topic)
	if err != nil {
		return domain.Quiz{}, err
	}

	return domain.Quiz{
		ID:        s.newID(),
		Topic:     topic,
		Questions: questions,
		Source:    domain.SourcePrimary,
		CreatedAt: s.now(),
	}, nil
}

func (s *QuizService) backupQuiz(topic string) domain.Quiz {
	return domain.Quiz{
		ID:        s.newID(),
		Topic:     topic,
		Questions: GenerateBackupQuestions(topic, s.count),
		Source:    domain.SourceBackup,
		CreatedAt: s.now(),
	}
}

// TopicKey case-folds a topic for grouping and cache lookup; display code
// keeps the original casing.
func TopicKey(topic string) string {
	return strings.ToLower(topic)
}
