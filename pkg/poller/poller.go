// Package poller waits for an assessment result to carry its narrative.
//
// Polling has no retry cap: it stops once the narrative is present, on a
// definitive fetch error, or when the context is cancelled.
package poller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/assessment"
)

const DefaultInterval = 5 * time.Second

type State int

const (
	StateLoading State = iota
	StateHasResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateHasResult:
		return "has_result"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Snapshot is what the consumer observes after every fetch.
type Snapshot struct {
	State  State
	Result *assessment.Result
	Err    error
}

// Done reports whether polling has ended for this snapshot.
func (s Snapshot) Done() bool {
	return s.State == StateError || (s.Result != nil && s.Result.HasNarrative())
}

// Fetcher loads the current stored result of an assessment.
type Fetcher interface {
	Fetch(ctx context.Context, assessmentID int64) (assessment.Result, error)
}

// StatusError is a non-2xx answer from the result endpoint.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("result fetch: http %d", e.Code)
	}
	return fmt.Sprintf("result fetch: http %d: %s", e.Code, e.Message)
}

// Definitive reports whether err ends polling. Client errors (not found
// included) are definitive; network failures and 5xx are retried.
func Definitive(err error) bool {
	if errors.Is(err, assessment.ErrResultNotFound) || errors.Is(err, assessment.ErrNotFound) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusBadRequest && se.Code < http.StatusInternalServerError
	}
	return false
}

type Poller struct {
	fetch    Fetcher
	interval time.Duration
	logger   *zap.Logger
}

func New(f Fetcher, interval time.Duration, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{fetch: f, interval: interval, logger: logger}
}

// Run fetches once immediately and then every interval. onChange, if set, is
// called after every fetch that changes the observed state. The final
// snapshot is returned; on cancellation it comes with the context error.
func (p *Poller) Run(ctx context.Context, assessmentID int64, onChange func(Snapshot)) (Snapshot, error) {
	log := p.logger.With(zap.Int64("assessment_id", assessmentID))
	cur := Snapshot{State: StateLoading}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		next := p.step(ctx, assessmentID, cur, log, attempt)
		if changed(cur, next) && onChange != nil {
			onChange(next)
		}
		cur = next
		if cur.Done() {
			return cur, nil
		}

		select {
		case <-ctx.Done():
			return cur, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Poller) step(ctx context.Context, id int64, cur Snapshot, log *zap.Logger, attempt int) Snapshot {
	res, err := p.fetch.Fetch(ctx, id)
	if err == nil {
		return Snapshot{State: StateHasResult, Result: &res}
	}
	if Definitive(err) {
		log.Info("result polling stopped", zap.Error(err), zap.Int("attempt", attempt))
		return Snapshot{State: StateError, Result: cur.Result, Err: err}
	}
	log.Debug("result fetch failed, retrying", zap.Error(err), zap.Int("attempt", attempt))
	return cur
}

func changed(a, b Snapshot) bool {
	if a.State != b.State || a.Err != b.Err {
		return true
	}
	return (a.Result == nil) != (b.Result == nil) ||
		(a.Result != nil && a.Result.HasNarrative() != b.Result.HasNarrative())
}
