package assessment_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/assessment"
	"github.com/artem13815/recruit/pkg/candidate"
)

type memRepo struct {
	mu          sync.Mutex
	assessments map[int64]assessment.Assessment
	results     map[int64]assessment.Result
	nextID      int64
}

func newMemRepo() *memRepo {
	return &memRepo{
		assessments: map[int64]assessment.Assessment{},
		results:     map[int64]assessment.Result{},
	}
}

func (m *memRepo) Create(_ context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	a.ID = m.nextID
	m.assessments[a.ID] = a
	return a, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (assessment.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assessments[id]
	if !ok {
		return a, assessment.ErrNotFound
	}
	return a, nil
}

func (m *memRepo) GetByToken(_ context.Context, token string) (assessment.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.assessments {
		if a.Token == token {
			return a, nil
		}
	}
	return assessment.Assessment{}, assessment.ErrNotFound
}

func (m *memRepo) FirstForCandidate(_ context.Context, ref candidate.Ref) (assessment.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var first *assessment.Assessment
	for _, a := range m.assessments {
		if a.Candidate != ref {
			continue
		}
		if first == nil || a.ID < first.ID {
			a := a
			first = &a
		}
	}
	if first == nil {
		return assessment.Assessment{}, assessment.ErrNotFound
	}
	return *first, nil
}

func (m *memRepo) MarkCompleted(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.assessments[id]
	a.Status = assessment.StatusCompleted
	m.assessments[id] = a
	return nil
}

func (m *memRepo) CreateResult(_ context.Context, r assessment.Result) (assessment.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.AssessmentID]; ok {
		return assessment.Result{}, assessment.ErrAlreadyCompleted
	}
	r.ID = int64(len(m.results) + 1)
	m.results[r.AssessmentID] = r
	return r, nil
}

func (m *memRepo) ResultByAssessment(_ context.Context, id int64) (assessment.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[id]
	if !ok {
		return r, assessment.ErrResultNotFound
	}
	return r, nil
}

type memCandidates struct {
	profiles map[candidate.Ref]string
	known    map[candidate.Ref]bool
	err      error
}

func (c *memCandidates) Get(_ context.Context, ref candidate.Ref) (candidate.Record, error) {
	if !c.known[ref] {
		return candidate.Record{}, candidate.ErrNotFound
	}
	return candidate.Record{ID: ref.ID, Source: ref.Source}, nil
}

func (c *memCandidates) SetBehavioralProfile(_ context.Context, ref candidate.Ref, profile string) error {
	if c.err != nil {
		return c.err
	}
	c.profiles[ref] = profile
	return nil
}

type fakeGuard struct {
	busy     bool
	err      error
	released int
}

func (g *fakeGuard) Acquire(context.Context, int64) (func(), bool, error) {
	if g.err != nil {
		return nil, false, g.err
	}
	if g.busy {
		return nil, false, nil
	}
	return func() { g.released++ }, true, nil
}

var (
	maria = candidate.Ref{ID: 7, Source: candidate.SourceUpload}
	fixed = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo       *memRepo
	candidates *memCandidates
	primary    *scripted
	secondary  *scripted
	guard      *fakeGuard
	clock      time.Time
	uc         assessment.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:       newMemRepo(),
		candidates: &memCandidates{profiles: map[candidate.Ref]string{}, known: map[candidate.Ref]bool{maria: true}},
		primary:    &scripted{name: "openai", out: validNarrative},
		secondary:  &scripted{name: "groq", out: validNarrative},
		guard:      &fakeGuard{},
		clock:      fixed,
	}
	f.uc = assessment.NewService(f.repo, f.candidates, nil,
		assessment.NewAnalyzer(nil, f.primary, f.secondary),
		assessment.Options{
			LinkBase: "https://example.test/",
			Guard:    f.guard,
			Now:      func() time.Time { return f.clock },
		})
	return f
}

func (f *fixture) issue(t *testing.T) (assessment.Issued, string) {
	t.Helper()
	issued, err := f.uc.Create(context.Background(), maria)
	require.NoError(t, err)
	token := strings.TrimPrefix(issued.Link, "https://example.test/assessment/")
	require.NotEqual(t, issued.Link, token)
	return issued, token
}

var scenario = assessment.Selections{
	Step1: []string{"Decidido", "Ativo"},
	Step2: []string{"Popular"},
	Step3: []string{},
}

func TestCreate_IssuesPendingAssessment(t *testing.T) {
	f := newFixture(t)
	issued, token := f.issue(t)

	a := f.repo.assessments[issued.AssessmentID]
	assert.Equal(t, assessment.StatusPending, a.Status)
	assert.Equal(t, token, a.Token)
	assert.Equal(t, maria, a.Candidate)
	assert.Equal(t, fixed.Add(30*24*time.Hour), a.ExpiresAt)

	_, other := f.issue(t)
	assert.NotEqual(t, token, other)

	_, err := f.uc.Create(context.Background(), candidate.Ref{ID: 99, Source: candidate.SourceUpload})
	assert.ErrorIs(t, err, candidate.ErrNotFound)
	_, err = f.uc.Create(context.Background(), candidate.Ref{})
	var verr assessment.ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestFetchByToken(t *testing.T) {
	f := newFixture(t)
	issued, token := f.issue(t)

	q, err := f.uc.FetchByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, issued.AssessmentID, q.AssessmentID)
	assert.Len(t, q.Adjectives, 86)

	_, err = f.uc.FetchByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, assessment.ErrNotFound)

	f.clock = fixed.Add(31 * 24 * time.Hour)
	_, err = f.uc.FetchByToken(context.Background(), token)
	assert.ErrorIs(t, err, assessment.ErrNotFound)
}

func TestSubmit_EndToEnd(t *testing.T) {
	f := newFixture(t)
	issued, token := f.issue(t)

	res, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	require.NoError(t, err)
	assert.Equal(t, assessment.Scores{Executor: 66.67, Communicator: 33.33}, res.Scores)
	assert.Equal(t, `["Decidido","Ativo"]`, res.Step1)
	assert.Equal(t, `["Popular"]`, res.Step2)
	assert.Equal(t, `[]`, res.Step3)
	require.NotNil(t, res.Narrative)

	assert.Equal(t, "Executor", f.candidates.profiles[maria])
	assert.Equal(t, assessment.StatusCompleted, f.repo.assessments[issued.AssessmentID].Status)
	assert.Equal(t, 1, f.guard.released)

	// completed tokens look unknown
	_, err = f.uc.FetchByToken(context.Background(), token)
	assert.ErrorIs(t, err, assessment.ErrNotFound)

	stored, err := f.uc.Result(context.Background(), issued.AssessmentID)
	require.NoError(t, err)
	assert.Equal(t, res, stored)
}

func TestSubmit_SecondSubmissionRejectedWithoutMutation(t *testing.T) {
	f := newFixture(t)
	issued, _ := f.issue(t)

	first, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	require.NoError(t, err)

	_, err = f.uc.Submit(context.Background(), issued.AssessmentID, assessment.Selections{Step1: []string{"Calmo"}})
	assert.ErrorIs(t, err, assessment.ErrAlreadyCompleted)

	stored, err := f.uc.Result(context.Background(), issued.AssessmentID)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
	assert.Len(t, f.primary.calls, 1)
}

func TestSubmit_ExistingResultWhilePending(t *testing.T) {
	f := newFixture(t)
	issued, token := f.issue(t)
	f.repo.results[issued.AssessmentID] = assessment.Result{ID: 1, AssessmentID: issued.AssessmentID}

	_, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	assert.ErrorIs(t, err, assessment.ErrAlreadyCompleted)
	assert.Empty(t, f.primary.calls)

	// the stale pending assessment is closed and no longer offered
	assert.Equal(t, assessment.StatusCompleted, f.repo.assessments[issued.AssessmentID].Status)
	_, err = f.uc.FetchByToken(context.Background(), token)
	assert.ErrorIs(t, err, assessment.ErrNotFound)
}

// blindRepo never sees an existing result before CreateResult, as when a
// concurrent submission without the guard wins the insert.
type blindRepo struct{ *memRepo }

func (blindRepo) ResultByAssessment(context.Context, int64) (assessment.Result, error) {
	return assessment.Result{}, assessment.ErrResultNotFound
}

func TestSubmit_LostInsertRaceCompletesAssessment(t *testing.T) {
	f := newFixture(t)
	issued, _ := f.issue(t)
	f.repo.results[issued.AssessmentID] = assessment.Result{ID: 1, AssessmentID: issued.AssessmentID}

	uc := assessment.NewService(blindRepo{f.repo}, f.candidates, nil,
		assessment.NewAnalyzer(nil, f.primary), assessment.Options{Now: func() time.Time { return f.clock }})
	_, err := uc.Submit(context.Background(), issued.AssessmentID, scenario)
	assert.ErrorIs(t, err, assessment.ErrAlreadyCompleted)
	assert.Equal(t, assessment.StatusCompleted, f.repo.assessments[issued.AssessmentID].Status)
	assert.Equal(t, int64(1), f.repo.results[issued.AssessmentID].ID)
}

func TestSubmit_BothProvidersFail(t *testing.T) {
	f := newFixture(t)
	f.primary.out, f.primary.err = "", errors.New("network")
	f.secondary.out, f.secondary.err = "", errors.New("network")
	issued, _ := f.issue(t)

	res, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	require.NoError(t, err)
	assert.Nil(t, res.Narrative)
	assert.Equal(t, 66.67, res.Executor)
	assert.Len(t, f.secondary.calls, 1)
	assert.Equal(t, f.primary.calls[0], f.secondary.calls[0])
	assert.Equal(t, assessment.StatusCompleted, f.repo.assessments[issued.AssessmentID].Status)
	assert.Empty(t, f.candidates.profiles)
}

func TestSubmit_MalformedNarrativeStoredAsIs(t *testing.T) {
	f := newFixture(t)
	f.primary.out = "resposta livre"
	f.secondary.out = "outra resposta livre"
	issued, _ := f.issue(t)

	res, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	require.NoError(t, err)
	require.NotNil(t, res.Narrative)
	assert.Equal(t, "outra resposta livre", *res.Narrative)
	assert.Empty(t, f.candidates.profiles)
}

func TestSubmit_ProfileFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.candidates.err = errors.New("store down")
	issued, _ := f.issue(t)

	_, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	require.NoError(t, err)
	assert.Equal(t, assessment.StatusCompleted, f.repo.assessments[issued.AssessmentID].Status)
}

func TestSubmit_Guard(t *testing.T) {
	f := newFixture(t)
	issued, _ := f.issue(t)

	f.guard.busy = true
	_, err := f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	assert.ErrorIs(t, err, assessment.ErrSubmissionInProgress)
	assert.Empty(t, f.repo.results)

	f.guard.busy = false
	f.guard.err = errors.New("redis down")
	_, err = f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	assert.NoError(t, err)
}

func TestSubmit_UnknownAndExpired(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Submit(context.Background(), 404, scenario)
	assert.ErrorIs(t, err, assessment.ErrNotFound)

	issued, _ := f.issue(t)
	f.clock = fixed.Add(30 * 24 * time.Hour)
	_, err = f.uc.Submit(context.Background(), issued.AssessmentID, scenario)
	assert.ErrorIs(t, err, assessment.ErrNotFound)
	assert.Empty(t, f.repo.results)
}

func TestCandidateProfile(t *testing.T) {
	f := newFixture(t)
	p, err := f.uc.CandidateProfile(context.Background(), maria)
	require.NoError(t, err)
	assert.Nil(t, p)

	first, _ := f.issue(t)
	second, _ := f.issue(t)
	_, err = f.uc.Submit(context.Background(), second.AssessmentID, scenario)
	require.NoError(t, err)

	// only the first assessment counts, and it has no result yet
	p, err = f.uc.CandidateProfile(context.Background(), maria)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = f.uc.Submit(context.Background(), first.AssessmentID, assessment.Selections{Step1: []string{"Calmo"}})
	require.NoError(t, err)
	p, err = f.uc.CandidateProfile(context.Background(), maria)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, first.AssessmentID, p.AssessmentID)
	assert.Equal(t, 100.0, p.Planner)
}
