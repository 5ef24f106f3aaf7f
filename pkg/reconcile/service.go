package reconcile

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/artem13815/recruit/pkg/candidate"
	"github.com/artem13815/recruit/pkg/vacancy"
)

// JobLister and CandidateLister are the record-store reads the service needs.
type JobLister interface {
	ListAll(ctx context.Context) ([]vacancy.Job, error)
}

type CandidateLister interface {
	ListUpload(ctx context.Context) ([]candidate.Record, error)
	ListChat(ctx context.Context) ([]candidate.Record, error)
}

// UseCase — сценарии агрегированного представления рекрутера.
type UseCase interface {
	ForUser(ctx context.Context, userID int64) (View, error)
	StatsForUser(ctx context.Context, userID int64) (Stats, error)
}

type service struct {
	jobs       JobLister
	candidates CandidateLister
}

func NewService(jobs JobLister, candidates CandidateLister) UseCase {
	return &service{jobs: jobs, candidates: candidates}
}

// ForUser reads the three collections concurrently and reconciles them. A
// failed read fails the whole call; there is no partial view.
func (s *service) ForUser(ctx context.Context, userID int64) (View, error) {
	var (
		jobs     []vacancy.Job
		uploaded []candidate.Record
		chatted  []candidate.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if jobs, err = s.jobs.ListAll(gctx); err != nil {
			return fmt.Errorf("list jobs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if uploaded, err = s.candidates.ListUpload(gctx); err != nil {
			return fmt.Errorf("list uploaded candidates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if chatted, err = s.candidates.ListChat(gctx); err != nil {
			return fmt.Errorf("list chat candidates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}
	return Reconcile(userID, jobs, uploaded, chatted), nil
}

func (s *service) StatsForUser(ctx context.Context, userID int64) (Stats, error) {
	v, err := s.ForUser(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(v), nil
}

// ApprovalScore is the screening score from which a candidate counts as approved.
const ApprovalScore = 90

// Stats — сводка для дашборда.
type Stats struct {
	ActiveJobs         int `json:"activeJobs"`
	TotalCandidates    int `json:"totalCandidates"`
	AverageScore       int `json:"averageScore"`
	ApprovedCandidates int `json:"approvedCandidates"`
}

// ComputeStats only counts candidates whose resolved link points at one of
// the view's jobs.
func ComputeStats(v View) Stats {
	active := make(map[int64]struct{}, len(v.Jobs))
	for _, j := range v.Jobs {
		active[j.ID] = struct{}{}
	}

	st := Stats{ActiveJobs: len(v.Jobs)}
	var sum float64
	for _, c := range v.Candidates {
		ref, ok := c.Job.Ref()
		if !ok {
			continue
		}
		if _, ok := active[ref.ID]; !ok {
			continue
		}
		st.TotalCandidates++
		if c.Score != nil {
			sum += *c.Score
			if *c.Score >= ApprovalScore {
				st.ApprovedCandidates++
			}
		}
	}
	if st.TotalCandidates > 0 {
		st.AverageScore = int(math.Round(sum / float64(st.TotalCandidates)))
	}
	return st
}
