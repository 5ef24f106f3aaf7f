package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/artem13815/recruit/pkg/candidate"
)

// Status of an assessment. Transitions exactly once, Pendente -> Concluído.
type Status string

const (
	StatusPending   Status = "Pendente"
	StatusCompleted Status = "Concluído"
)

// Assessment is a single-use questionnaire issued to a candidate.
type Assessment struct {
	ID        int64         `json:"id"`
	Candidate candidate.Ref `json:"candidato"`
	Token     string        `json:"token"`
	Status    Status        `json:"status"`
	ExpiresAt time.Time     `json:"expiraEm"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (a Assessment) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && !now.Before(a.ExpiresAt)
}

// Open reports whether the assessment still accepts a submission.
func (a Assessment) Open(now time.Time) bool {
	return a.Status == StatusPending && !a.Expired(now)
}

// Scores — проценты по четырём измерениям, округлённые до сотых.
type Scores struct {
	Executor     float64 `json:"executor"`
	Communicator float64 `json:"comunicador"`
	Planner      float64 `json:"planejador"`
	Analyst      float64 `json:"analista"`
}

// Sum of the four percentages; 100 within rounding drift when anything was selected.
func (s Scores) Sum() float64 {
	return s.Executor + s.Communicator + s.Planner + s.Analyst
}

// Selections are the adjectives picked in each of the three steps.
type Selections struct {
	Step1 []string `json:"passo1"`
	Step2 []string `json:"passo2"`
	Step3 []string `json:"passo3"`
}

// All returns the selections of every step in order.
func (s Selections) All() []string {
	out := make([]string, 0, len(s.Step1)+len(s.Step2)+len(s.Step3))
	out = append(out, s.Step1...)
	out = append(out, s.Step2...)
	return append(out, s.Step3...)
}

// Result is written once per assessment. Narrative holds the provider output
// as stored: canonical JSON, an unparsable string, or nil.
type Result struct {
	ID           int64 `json:"id"`
	AssessmentID int64 `json:"avaliacao"`
	Scores
	Step1     string    `json:"respostas_passo1"`
	Step2     string    `json:"respostas_passo2"`
	Step3     string    `json:"respostas_passo3"`
	Narrative *string   `json:"analise_ia"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasNarrative is what result consumers wait for.
func (r Result) HasNarrative() bool { return r.Narrative != nil }

var (
	ErrNotFound             = errors.New("assessment not found")
	ErrResultNotFound       = errors.New("assessment result not found")
	ErrAlreadyCompleted     = errors.New("assessment already completed")
	ErrSubmissionInProgress = errors.New("assessment submission in progress")
)

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository — порт хранилища анкет и результатов.
type Repository interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	Get(ctx context.Context, id int64) (Assessment, error)
	GetByToken(ctx context.Context, token string) (Assessment, error)
	// FirstForCandidate returns the earliest assessment issued to the candidate.
	FirstForCandidate(ctx context.Context, ref candidate.Ref) (Assessment, error)
	MarkCompleted(ctx context.Context, id int64) error
	// CreateResult fails with ErrAlreadyCompleted if the assessment already has one.
	CreateResult(ctx context.Context, r Result) (Result, error)
	ResultByAssessment(ctx context.Context, assessmentID int64) (Result, error)
}

// Candidates is the part of the candidate store the assessment flow touches.
type Candidates interface {
	Get(ctx context.Context, ref candidate.Ref) (candidate.Record, error)
	SetBehavioralProfile(ctx context.Context, ref candidate.Ref, profile string) error
}

// Guard serializes submissions of one assessment across processes.
// Acquire returns ok=false when another submission holds the lock.
type Guard interface {
	Acquire(ctx context.Context, assessmentID int64) (release func(), ok bool, err error)
}
