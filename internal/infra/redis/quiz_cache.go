package redis

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"ai-quiz-service/internal/app"
	"ai-quiz-service/internal/domain"
)

// QuizCache stores generated quizzes in Redis as JSON, one key per
// case-folded topic: SET quiz:topic:{key} {quiz JSON} EX ttl.
// Redis being unreachable is never fatal; it just means a cache miss.
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{
		client: client,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetOrGenerate returns the cached quiz for key or generates one, storing it
// when the model path succeeded. Concurrent misses for the same key share a
// single generation.
func (c *QuizCache) GetOrGenerate(ctx context.Context, key string, generate app.GenerateFunc) app.GeneratedQuiz {
	if quiz, ok := c.lookup(ctx, key); ok {
		return app.GeneratedQuiz{Quiz: quiz}
	}

	result, _, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another goroutine filled the key.
		if quiz, ok := c.lookup(ctx, key); ok {
			return app.GeneratedQuiz{Quiz: quiz}, nil
		}

		generated := generate(ctx)
		if generated.Source == domain.SourcePrimary {
			c.store(ctx, key, generated.Quiz)
		}
		return generated, nil
	})
	return result.(app.GeneratedQuiz)
}

func (c *QuizCache) lookup(ctx context.Context, key string) (domain.Quiz, bool) {
	payload, err := c.client.Get(ctx, c.quizKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis quiz cache read failed for %q: %v", key, err)
		}
		return domain.Quiz{}, false
	}

	var quiz domain.Quiz
	if err := json.Unmarshal(payload, &quiz); err != nil {
		log.Printf("redis quiz cache held invalid payload for %q: %v", key, err)
		return domain.Quiz{}, false
	}
	return quiz, true
}

func (c *QuizCache) store(ctx context.Context, key string, quiz domain.Quiz) {
	payload, err := json.Marshal(quiz)
	if err != nil {
		log.Printf("marshal quiz for cache: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.quizKey(key), payload, c.ttlWithJitter()).Err(); err != nil {
		log.Printf("redis quiz cache write failed for %q: %v", key, err)
	}
}

func (c *QuizCache) quizKey(key string) string {
	return "quiz:topic:" + key
}

func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
