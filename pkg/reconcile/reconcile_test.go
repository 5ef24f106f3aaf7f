package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/candidate"
	"github.com/artem13815/recruit/pkg/reconcile"
	"github.com/artem13815/recruit/pkg/vacancy"
)

const (
	userU     = int64(1)
	userOther = int64(2)
)

func jobs() []vacancy.Job {
	return []vacancy.Job{
		{ID: 10, Title: "Desenvolvedor Go", Owners: []int64{userU}},
		{ID: 11, Title: "Vendedor", Owners: []int64{userOther}},
		{ID: 12, Title: "Analista de Dados", Owners: []int64{userU, userOther}},
	}
}

func byName(v reconcile.View) map[string]candidate.Record {
	out := make(map[string]candidate.Record, len(v.Candidates))
	for _, c := range v.Candidates {
		out[c.Name] = c
	}
	return out
}

func TestReconcile_FiltersJobsByOwner(t *testing.T) {
	v := reconcile.Reconcile(userU, jobs())
	require.Len(t, v.Jobs, 2)
	assert.Equal(t, int64(10), v.Jobs[0].ID)
	assert.Equal(t, int64(12), v.Jobs[1].ID)
	assert.Empty(t, v.Candidates)
}

func TestReconcile_OwnedCandidateAlwaysIncluded(t *testing.T) {
	links := []candidate.JobLink{
		candidate.NoLink(),
		candidate.TitleLink("cargo inexistente"),
		candidate.RefLink(candidate.JobRef{ID: 11, Value: "Vendedor"}),
		candidate.RefLink(candidate.JobRef{ID: 999, Value: "Apagada"}),
	}
	for _, l := range links {
		c := candidate.Record{ID: 1, Name: "own", Owners: []int64{userU}, Job: l}
		v := reconcile.Reconcile(userU, jobs(), []candidate.Record{c})
		require.Len(t, v.Candidates, 1, "link kind %s", l.Kind())
		// links to jobs outside the user's index are dropped
		assert.Equal(t, candidate.LinkNone, v.Candidates[0].Job.Kind())
	}
}

func TestReconcile_TitleMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	chat := []candidate.Record{
		{ID: 1, Source: candidate.SourceChat, Name: "ana", Job: candidate.TitleLink("  desenvolvedor GO ")},
	}
	v := reconcile.Reconcile(userU, jobs(), nil, chat)
	require.Len(t, v.Candidates, 1)
	ref, ok := v.Candidates[0].Job.Ref()
	require.True(t, ok)
	assert.Equal(t, candidate.JobRef{ID: 10, Value: "Desenvolvedor Go"}, ref)
}

func TestReconcile_LinkedTitleComesFromIndex(t *testing.T) {
	upload := []candidate.Record{
		{ID: 1, Name: "bia", Job: candidate.RefLink(candidate.JobRef{ID: 12, Value: "Analista Jr (antigo)"})},
	}
	v := reconcile.Reconcile(userU, jobs(), upload)
	require.Len(t, v.Candidates, 1)
	ref, _ := v.Candidates[0].Job.Ref()
	assert.Equal(t, candidate.JobRef{ID: 12, Value: "Analista de Dados"}, ref)
}

func TestReconcile_ForeignLinkExcluded(t *testing.T) {
	upload := []candidate.Record{
		{ID: 1, Name: "carlos", Owners: []int64{userOther}, Job: candidate.RefLink(candidate.JobRef{ID: 11})},
		{ID: 2, Name: "duda", Job: candidate.TitleLink("Vendedor")},
		{ID: 3, Name: "edu"},
	}
	v := reconcile.Reconcile(userU, jobs(), upload)
	assert.Empty(t, v.Candidates)

	v = reconcile.Reconcile(userOther, jobs(), upload)
	got := byName(v)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "carlos")
	assert.Contains(t, got, "duda")
}

func TestReconcile_MergesChannels(t *testing.T) {
	upload := []candidate.Record{{ID: 1, Source: candidate.SourceUpload, Name: "up", Owners: []int64{userU}}}
	chat := []candidate.Record{{ID: 1, Source: candidate.SourceChat, Name: "chat", Job: candidate.TitleLink("analista de dados")}}
	v := reconcile.Reconcile(userU, jobs(), upload, chat)
	require.Len(t, v.Candidates, 2)
	assert.Equal(t, candidate.SourceUpload, v.Candidates[0].Source)
	assert.Equal(t, candidate.SourceChat, v.Candidates[1].Source)
}

// Known limitation: with two owned jobs sharing a title, the job indexed
// last receives the free-text matches.
func TestReconcile_DuplicateTitlesLastIndexedWins(t *testing.T) {
	js := []vacancy.Job{
		{ID: 20, Title: "Suporte", Owners: []int64{userU}},
		{ID: 21, Title: " SUPORTE", Owners: []int64{userU}},
	}
	chat := []candidate.Record{{ID: 1, Name: "f", Job: candidate.TitleLink("suporte")}}
	v := reconcile.Reconcile(userU, js, chat)
	require.Len(t, v.Candidates, 1)
	ref, _ := v.Candidates[0].Job.Ref()
	assert.Equal(t, int64(21), ref.ID)
	assert.Equal(t, " SUPORTE", ref.Value)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	upload := []candidate.Record{{ID: 1, Name: "g", Job: candidate.TitleLink("Desenvolvedor Go")}}
	_ = reconcile.Reconcile(userU, jobs(), upload)
	assert.Equal(t, candidate.LinkTitle, upload[0].Job.Kind())
}

func score(v float64) *float64 { return &v }

func TestComputeStats(t *testing.T) {
	v := reconcile.View{
		Jobs: []vacancy.Job{{ID: 10}, {ID: 12}},
		Candidates: []candidate.Record{
			{Name: "a", Score: score(95), Job: candidate.RefLink(candidate.JobRef{ID: 10})},
			{Name: "b", Score: score(70), Job: candidate.RefLink(candidate.JobRef{ID: 12})},
			{Name: "c", Job: candidate.RefLink(candidate.JobRef{ID: 12})},
			{Name: "d", Score: score(100)},
		},
	}
	st := reconcile.ComputeStats(v)
	assert.Equal(t, reconcile.Stats{ActiveJobs: 2, TotalCandidates: 3, AverageScore: 55, ApprovedCandidates: 1}, st)
	assert.Equal(t, reconcile.Stats{}, reconcile.ComputeStats(reconcile.View{}))
}

type fakeStore struct {
	jobs    []vacancy.Job
	upload  []candidate.Record
	chat    []candidate.Record
	chatErr error
}

func (f *fakeStore) ListAll(context.Context) ([]vacancy.Job, error) { return f.jobs, nil }

func (f *fakeStore) ListUpload(context.Context) ([]candidate.Record, error) { return f.upload, nil }

func (f *fakeStore) ListChat(context.Context) ([]candidate.Record, error) {
	return f.chat, f.chatErr
}

func TestService_ForUser(t *testing.T) {
	st := &fakeStore{
		jobs:   jobs(),
		upload: []candidate.Record{{ID: 1, Name: "x", Job: candidate.RefLink(candidate.JobRef{ID: 10})}},
		chat:   []candidate.Record{{ID: 2, Name: "y", Job: candidate.TitleLink("vendedor")}},
	}
	svc := reconcile.NewService(st, st)

	v, err := svc.ForUser(context.Background(), userU)
	require.NoError(t, err)
	assert.Len(t, v.Jobs, 2)
	require.Len(t, v.Candidates, 1)
	assert.Equal(t, "x", v.Candidates[0].Name)

	stats, err := svc.StatsForUser(context.Background(), userU)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCandidates)
}

func TestService_FetchFailureFailsWhole(t *testing.T) {
	boom := errors.New("store down")
	st := &fakeStore{jobs: jobs(), chatErr: boom}
	svc := reconcile.NewService(st, st)

	v, err := svc.ForUser(context.Background(), userU)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, v.Jobs)
	assert.Empty(t, v.Candidates)
}
