package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ai-quiz-service/internal/app"
	"ai-quiz-service/internal/domain"
)

// QuizCache keeps generated quizzes in memory with a TTL so repeated requests
// for the same topic skip the model call. Only primary-sourced quizzes are
// stored; a fallback result is handed through uncached so the next request
// gets another shot at the model path.
type QuizCache struct {
	ttl   time.Duration
	clock func() time.Time
	sf    singleflight.Group
	rnd   *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedQuiz
}

type cachedQuiz struct {
	quiz      domain.Quiz
	expiresAt time.Time
}

func NewQuizCache(ttl time.Duration) *QuizCache {
	return &QuizCache{
		ttl:   ttl,
		clock: time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		cache: make(map[string]cachedQuiz),
	}
}

// GetOrGenerate returns the cached quiz for key or generates one, storing it
// when the model path succeeded. Concurrent misses for the same key share a
// single generation.
func (c *QuizCache) GetOrGenerate(ctx context.Context, key string, generate app.GenerateFunc) app.GeneratedQuiz {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return app.GeneratedQuiz{Quiz: entry.quiz}
	}
	c.mu.RUnlock()

	result, _, _ := c.sf.Do(key, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return app.GeneratedQuiz{Quiz: entry.quiz}, nil
		}
		c.mu.RUnlock()

		generated := generate(ctx)
		if generated.Source == domain.SourcePrimary {
			c.mu.Lock()
			c.cache[key] = cachedQuiz{
				quiz:      generated.Quiz,
				expiresAt: now.Add(c.ttlWithJitter()),
			}
			c.mu.Unlock()
		}
		return generated, nil
	})
	return result.(app.GeneratedQuiz)
}

func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
