package vacancy

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"
)

// Job описывает вакансию рекрутера.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Address     string    `json:"endereco,omitempty"`
	Required    string    `json:"requisitosObrigatorios,omitempty"`
	Desired     string    `json:"requisitosDesejaveis,omitempty"`
	Owners      []int64   `json:"usuario"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OwnedBy reports whether userID is among the job owners.
func (j Job) OwnedBy(userID int64) bool {
	return slices.Contains(j.Owners, userID)
}

// NormalizeTitle is the secondary join key: titles compare case-insensitively
// with surrounding whitespace ignored.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Address     *string
	Required    *string
	Desired     *string
	Owners      []int64
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Address == nil &&
		p.Required == nil && p.Desired == nil && p.Owners == nil
}

var ErrNotFound = errors.New("job not found")

// Repository — порт для работы с вакансиями.
type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	Get(ctx context.Context, id int64) (Job, error)
	Update(ctx context.Context, id int64, p Patch) (Job, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Job, error)
}
