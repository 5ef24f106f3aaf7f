package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

const (
	guardPrefix     = "recruit:assessment:submit:"
	DefaultGuardTTL = 3 * time.Minute
)

// SubmissionGuard is a SET NX lock per assessment. The TTL bounds how long a
// crashed submission can block retries; it should exceed the provider timeouts.
type SubmissionGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// GuardTTL covers a submission that walks the whole provider chain, each call
// running up to perCall, plus a minute for scoring and the database writes.
func GuardTTL(perCall time.Duration, providers int) time.Duration {
	ttl := perCall*time.Duration(providers) + time.Minute
	if ttl < DefaultGuardTTL {
		return DefaultGuardTTL
	}
	return ttl
}

func NewSubmissionGuard(client redis.UniversalClient, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

func (g *SubmissionGuard) Acquire(ctx context.Context, assessmentID int64) (func(), bool, error) {
	key := guardPrefix + strconv.FormatInt(assessmentID, 10)
	ok, err := g.client.SetNX(ctx, key, "1", g.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire submission lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func() {
		// отдельный контекст: запрос мог уже завершиться
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = g.client.Del(ctx, key).Err()
	}
	return release, true, nil
}
