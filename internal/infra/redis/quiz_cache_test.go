package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"ai-quiz-service/internal/app"
	"ai-quiz-service/internal/domain"
)

func newTestCache(t *testing.T) (*QuizCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewQuizCache(client, time.Minute), mr
}

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

func TestQuizCacheStoresPrimaryInRedis(t *testing.T) {
	cache, mr := newTestCache(t)
	calls := 0
	generate := func(context.Context) app.GeneratedQuiz {
		calls++
		return primaryQuiz("gen-1")
	}

	_ = cache.GetOrGenerate(context.Background(), "go", generate)
	if !mr.Exists("quiz:topic:go") {
		t.Fatalf("expected quiz key in redis")
	}

	second := cache.GetOrGenerate(context.Background(), "go", generate)
	if calls != 1 {
		t.Fatalf("expected cache hit on second call, got %d generations", calls)
	}
	if second.ID != "gen-1" || len(second.Questions) != 1 {
		t.Fatalf("cached quiz did not round-trip: %+v", second.Quiz)
	}
}

func TestQuizCacheSkipsBackupResults(t *testing.T) {
	cache, mr := newTestCache(t)
	generate := func(context.Context) app.GeneratedQuiz {
		return app.GeneratedQuiz{
			Quiz:          domain.Quiz{ID: "backup", Topic: "go", Source: domain.SourceBackup},
			FallbackCause: domain.ErrCredentialMissing,
		}
	}

	_ = cache.GetOrGenerate(context.Background(), "go", generate)
	if mr.Exists("quiz:topic:go") {
		t.Fatalf("backup results must not be stored")
	}
}

func TestQuizCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	calls := 0
	generate := func(context.Context) app.GeneratedQuiz {
		calls++
		return primaryQuiz("gen-1")
	}

	_ = cache.GetOrGenerate(context.Background(), "go", generate)
	mr.FastForward(2 * time.Minute) // past ttl even with jitter
	_ = cache.GetOrGenerate(context.Background(), "go", generate)

	if calls != 2 {
		t.Fatalf("expected regeneration after expiry, got %d generations", calls)
	}
}

func TestQuizCacheSurvivesRedisOutage(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close() // cache must degrade to generating directly

	generated := cache.GetOrGenerate(context.Background(), "go", func(context.Context) app.GeneratedQuiz {
		return primaryQuiz("gen-1")
	})
	if generated.ID != "gen-1" {
		t.Fatalf("expected generation despite redis outage, got %+v", generated.Quiz)
	}
}
