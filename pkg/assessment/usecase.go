package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/candidate"
	"github.com/artem13815/recruit/pkg/taxonomy"
)

const (
	DefaultTTL      = 30 * 24 * time.Hour
	DefaultLinkBase = "https://recrutamentoia.com.br"
)

// Issued is returned to the recruiter after creating an assessment.
type Issued struct {
	Link         string `json:"link"`
	AssessmentID int64  `json:"assessmentId"`
}

// Questionnaire is what the candidate sees when opening the link.
type Questionnaire struct {
	AssessmentID int64    `json:"assessmentId"`
	Adjectives   []string `json:"adjectives"`
}

// UseCase — жизненный цикл поведенческой анкеты.
type UseCase interface {
	Create(ctx context.Context, ref candidate.Ref) (Issued, error)
	FetchByToken(ctx context.Context, token string) (Questionnaire, error)
	Submit(ctx context.Context, assessmentID int64, sel Selections) (Result, error)
	Result(ctx context.Context, assessmentID int64) (Result, error)
	// CandidateProfile returns the result of the candidate's first assessment,
	// or nil when there is none yet.
	CandidateProfile(ctx context.Context, ref candidate.Ref) (*Result, error)
}

type Options struct {
	LinkBase string
	TTL      time.Duration
	Guard    Guard
	Logger   *zap.Logger
	Now      func() time.Time
}

type service struct {
	repo       Repository
	candidates Candidates
	table      *taxonomy.Table
	analyzer   *Analyzer
	guard      Guard
	linkBase   string
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(repo Repository, candidates Candidates, table *taxonomy.Table, analyzer *Analyzer, opts Options) UseCase {
	s := &service{
		repo:       repo,
		candidates: candidates,
		table:      table,
		analyzer:   analyzer,
		guard:      opts.Guard,
		linkBase:   strings.TrimRight(opts.LinkBase, "/"),
		ttl:        opts.TTL,
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if s.table == nil {
		s.table = taxonomy.Default()
	}
	if s.analyzer == nil {
		s.analyzer = NewAnalyzer(opts.Logger)
	}
	if s.linkBase == "" {
		s.linkBase = DefaultLinkBase
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *service) Create(ctx context.Context, ref candidate.Ref) (Issued, error) {
	if ref.ID <= 0 {
		return Issued{}, ErrValidation("candidate id is required")
	}
	if _, err := s.candidates.Get(ctx, ref); err != nil {
		return Issued{}, err
	}
	now := s.now().UTC()
	a, err := s.repo.Create(ctx, Assessment{
		Candidate: ref,
		Token:     uuid.NewString(),
		Status:    StatusPending,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	})
	if err != nil {
		return Issued{}, fmt.Errorf("create assessment: %w", err)
	}
	s.logger.Info("assessment issued", zap.Int64("assessment_id", a.ID), zap.Int64("candidate_id", ref.ID))
	return Issued{Link: s.linkBase + "/assessment/" + a.Token, AssessmentID: a.ID}, nil
}

// FetchByToken does not distinguish unknown, completed and expired tokens.
func (s *service) FetchByToken(ctx context.Context, token string) (Questionnaire, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Questionnaire{}, ErrNotFound
	}
	a, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return Questionnaire{}, err
	}
	if !a.Open(s.now()) {
		return Questionnaire{}, ErrNotFound
	}
	return Questionnaire{AssessmentID: a.ID, Adjectives: s.table.Adjectives()}, nil
}

func (s *service) Submit(ctx context.Context, assessmentID int64, sel Selections) (Result, error) {
	log := s.logger.With(zap.Int64("assessment_id", assessmentID))

	a, err := s.repo.Get(ctx, assessmentID)
	if err != nil {
		return Result{}, err
	}
	if a.Status == StatusCompleted {
		return Result{}, ErrAlreadyCompleted
	}
	if a.Expired(s.now()) {
		return Result{}, ErrNotFound
	}

	if s.guard != nil {
		release, ok, err := s.guard.Acquire(ctx, assessmentID)
		switch {
		case err != nil:
			// store-level uniqueness still holds without the guard
			log.Warn("submission guard unavailable", zap.Error(err))
		case !ok:
			return Result{}, ErrSubmissionInProgress
		default:
			defer release()
		}
	}

	if _, err := s.repo.ResultByAssessment(ctx, assessmentID); err == nil {
		return Result{}, s.completeStale(ctx, log, assessmentID)
	} else if !errors.Is(err, ErrResultNotFound) {
		return Result{}, fmt.Errorf("check existing result: %w", err)
	}

	scores := Score(s.table, sel)
	analysis := s.analyzer.Analyze(ctx, scores, sel.All())

	res, err := s.repo.CreateResult(ctx, Result{
		AssessmentID: assessmentID,
		Scores:       scores,
		Step1:        encodeStep(sel.Step1),
		Step2:        encodeStep(sel.Step2),
		Step3:        encodeStep(sel.Step3),
		Narrative:    analysis.Raw,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return Result{}, s.completeStale(ctx, log, assessmentID)
		}
		return Result{}, fmt.Errorf("save result: %w", err)
	}

	if analysis.Narrative != nil {
		if err := s.candidates.SetBehavioralProfile(ctx, a.Candidate, analysis.Narrative.Primary); err != nil {
			log.Error("update candidate profile", zap.Error(err), zap.Int64("candidate_id", a.Candidate.ID))
		}
	} else if analysis.Raw != nil {
		log.Warn("narrative stored unparsed, candidate profile unchanged")
	}

	if err := s.repo.MarkCompleted(ctx, assessmentID); err != nil {
		return Result{}, fmt.Errorf("complete assessment: %w", err)
	}
	log.Info("assessment completed",
		zap.Float64("executor", scores.Executor),
		zap.Float64("comunicador", scores.Communicator),
		zap.Float64("planejador", scores.Planner),
		zap.Float64("analista", scores.Analyst),
		zap.Bool("narrative", res.HasNarrative()),
	)
	return res, nil
}

// completeStale closes an assessment that already has a result but is still
// pending, e.g. after MarkCompleted failed on an earlier submission.
func (s *service) completeStale(ctx context.Context, log *zap.Logger, assessmentID int64) error {
	if err := s.repo.MarkCompleted(ctx, assessmentID); err != nil {
		log.Error("complete assessment with stored result", zap.Error(err))
	}
	return ErrAlreadyCompleted
}

func (s *service) Result(ctx context.Context, assessmentID int64) (Result, error) {
	return s.repo.ResultByAssessment(ctx, assessmentID)
}

func (s *service) CandidateProfile(ctx context.Context, ref candidate.Ref) (*Result, error) {
	a, err := s.repo.FirstForCandidate(ctx, ref)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res, err := s.repo.ResultByAssessment(ctx, a.ID)
	if errors.Is(err, ErrResultNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func encodeStep(step []string) string {
	if step == nil {
		step = []string{}
	}
	b, _ := json.Marshal(step)
	return string(b)
}
