package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type limited struct {
	next    Provider
	limiter *rate.Limiter
}

// WithRateLimit caps outbound calls to rpm requests per minute. A non-positive
// rpm returns p unchanged.
func WithRateLimit(p Provider, rpm int) Provider {
	if rpm <= 0 {
		return p
	}
	return &limited{
		next:    p,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

func (l *limited) Name() string { return l.next.Name() }

func (l *limited) Model() string { return ModelOf(l.next) }

func (l *limited) Complete(ctx context.Context, req Request) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%s: rate limit: %w", l.next.Name(), err)
	}
	return l.next.Complete(ctx, req)
}
