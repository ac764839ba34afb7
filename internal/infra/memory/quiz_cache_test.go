package memory

import (
	"context"
	"testing"
	"time"

	"ai-quiz-service/internal/app"
	"ai-quiz-service/internal/domain"
)

func primaryQuiz(id string) app.GeneratedQuiz {
	return app.GeneratedQuiz{Quiz: domain.Quiz{
		ID:     id,
		Topic:  "go",
		Source: domain.SourcePrimary,
		Questions: []domain.Question{
			{ID: 1, Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		},
	}}
}

func TestQuizCacheReusesPrimaryResult(t *testing.T) {
	cache := NewQuizCache(time.Minute)
	calls := 0
	generate := func(context.Context) app.GeneratedQuiz {
		calls++
		return primaryQuiz("gen-1")
	}

	first := cache.GetOrGenerate(context.Background(), "go", generate)
	second := cache.GetOrGenerate(context.Background(), "go", generate)

	if calls != 1 {
		t.Fatalf("expected one generation, got %d", calls)
	}
	if first.ID != "gen-1" || second.ID != "gen-1" {
		t.Fatalf("expected cached quiz on second call, got %q and %q", first.ID, second.ID)
	}
}

func TestQuizCacheSkipsBackupResults(t *testing.T) {
	cache := NewQuizCache(time.Minute)
	calls := 0
	generate := func(context.Context) app.GeneratedQuiz {
		calls++
		return app.GeneratedQuiz{
			Quiz:          domain.Quiz{ID: "backup", Topic: "go", Source: domain.SourceBackup},
			FallbackCause: domain.ErrCredentialMissing,
		}
	}

	_ = cache.GetOrGenerate(context.Background(), "go", generate)
	_ = cache.GetOrGenerate(context.Background(), "go", generate)

	if calls != 2 {
		t.Fatalf("backup results must not be cached, got %d generations", calls)
	}
}

func TestQuizCacheExpires(t *testing.T) {
	cache := NewQuizCache(time.Minute)
	now := time.Unix(1700000000, 0)
	cache.clock = func() time.Time { return now }

	calls := 0
	generate := func(context.Context) app.GeneratedQuiz {
		calls++
		return primaryQuiz("gen-1")
	}

	_ = cache.GetOrGenerate(context.Background(), "go", generate)
	now = now.Add(2 * time.Minute) // past ttl even with jitter
	_ = cache.GetOrGenerate(context.Background(), "go", generate)

	if calls != 2 {
		t.Fatalf("expected regeneration after expiry, got %d generations", calls)
	}
}

func TestQuizCacheKeysAreIndependent(t *testing.T) {
	cache := NewQuizCache(time.Minute)
	calls := 0
	generate := func(context.Context) app.GeneratedQuiz {
		calls++
		return primaryQuiz("gen")
	}

	_ = cache.GetOrGenerate(context.Background(), "go", generate)
	_ = cache.GetOrGenerate(context.Background(), "rust", generate)

	if calls != 2 {
		t.Fatalf("expected one generation per key, got %d", calls)
	}
}
