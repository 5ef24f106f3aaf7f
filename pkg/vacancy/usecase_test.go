package vacancy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/vacancy"
)

type memRepo struct {
	created []vacancy.Job
	patched map[int64]vacancy.Patch
	deleted []int64
}

func (m *memRepo) Create(_ context.Context, j vacancy.Job) (vacancy.Job, error) {
	j.ID = int64(len(m.created) + 1)
	m.created = append(m.created, j)
	return j, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (vacancy.Job, error) {
	for _, j := range m.created {
		if j.ID == id {
			return j, nil
		}
	}
	return vacancy.Job{}, vacancy.ErrNotFound
}

func (m *memRepo) Update(_ context.Context, id int64, p vacancy.Patch) (vacancy.Job, error) {
	if m.patched == nil {
		m.patched = map[int64]vacancy.Patch{}
	}
	m.patched[id] = p
	return vacancy.Job{ID: id}, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memRepo) ListAll(context.Context) ([]vacancy.Job, error) { return m.created, nil }

func TestCreate_TrimsAndValidates(t *testing.T) {
	repo := &memRepo{}
	uc := vacancy.NewService(repo)

	j, err := uc.Create(context.Background(), vacancy.Job{Title: "  Dev Go ", Description: "backend", Owners: []int64{7}})
	require.NoError(t, err)
	assert.Equal(t, "Dev Go", j.Title)
	assert.Equal(t, int64(1), j.ID)

	_, err = uc.Create(context.Background(), vacancy.Job{Title: "x", Description: "y"})
	var verr vacancy.ErrValidation
	assert.True(t, errors.As(err, &verr))

	_, err = uc.Create(context.Background(), vacancy.Job{Title: " ", Description: "y", Owners: []int64{1}})
	assert.True(t, errors.As(err, &verr))
}

func TestUpdate_RejectsEmptyPatch(t *testing.T) {
	repo := &memRepo{created: []vacancy.Job{{ID: 3, Owners: []int64{7}}}}
	uc := vacancy.NewService(repo)

	_, err := uc.Update(context.Background(), 7, 3, vacancy.Patch{})
	assert.Error(t, err)

	_, err = uc.Update(context.Background(), 7, 3, vacancy.Patch{Owners: []int64{}})
	var verr vacancy.ErrValidation
	assert.True(t, errors.As(err, &verr))

	title := " Analista de Dados "
	_, err = uc.Update(context.Background(), 7, 3, vacancy.Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Analista de Dados", *repo.patched[3].Title)
}

func TestUpdateDelete_OnlyOwner(t *testing.T) {
	repo := &memRepo{created: []vacancy.Job{{ID: 3, Owners: []int64{7}}}}
	uc := vacancy.NewService(repo)

	title := "Tomada"
	_, err := uc.Update(context.Background(), 8, 3, vacancy.Patch{Title: &title, Owners: []int64{8}})
	assert.ErrorIs(t, err, vacancy.ErrNotFound)
	assert.Empty(t, repo.patched)

	assert.ErrorIs(t, uc.Delete(context.Background(), 8, 3), vacancy.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), 7, 99), vacancy.ErrNotFound)
	assert.Empty(t, repo.deleted)

	require.NoError(t, uc.Delete(context.Background(), 7, 3))
	assert.Equal(t, []int64{3}, repo.deleted)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "dev go", vacancy.NormalizeTitle("  DEV Go\t"))
	assert.True(t, vacancy.Job{Owners: []int64{1, 2}}.OwnedBy(2))
	assert.False(t, vacancy.Job{}.OwnedBy(2))
}
