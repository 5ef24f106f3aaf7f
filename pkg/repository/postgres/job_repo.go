package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/vacancy"
)

// JobRepository хранит вакансии.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, titulo, descricao, COALESCE(endereco, ''), COALESCE(requisitos_obrigatorios, ''),
	COALESCE(requisitos_desejaveis, ''), usuario, created_at`

func scanJob(row pgx.Row) (vacancy.Job, error) {
	var j vacancy.Job
	var created time.Time
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Address, &j.Required, &j.Desired, &j.Owners, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacancy.Job{}, vacancy.ErrNotFound
		}
		return vacancy.Job{}, err
	}
	if j.Owners == nil {
		j.Owners = []int64{}
	}
	j.CreatedAt = created.UTC()
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j vacancy.Job) (vacancy.Job, error) {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO jobs (titulo, descricao, endereco, requisitos_obrigatorios, requisitos_desejaveis, usuario, created_at)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7)
RETURNING `+jobColumns,
		strings.TrimSpace(j.Title), j.Description, j.Address, j.Required, j.Desired, j.Owners, j.CreatedAt)
	return scanJob(row)
}

func (r *JobRepository) Get(ctx context.Context, id int64) (vacancy.Job, error) {
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
}

// Update applies only the non-nil fields of the patch.
func (r *JobRepository) Update(ctx context.Context, id int64, p vacancy.Patch) (vacancy.Job, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE jobs SET
	titulo = COALESCE($2, titulo),
	descricao = COALESCE($3, descricao),
	endereco = COALESCE($4, endereco),
	requisitos_obrigatorios = COALESCE($5, requisitos_obrigatorios),
	requisitos_desejaveis = COALESCE($6, requisitos_desejaveis),
	usuario = COALESCE($7, usuario)
WHERE id = $1
RETURNING `+jobColumns,
		id, p.Title, p.Description, p.Address, p.Required, p.Desired, p.Owners)
	return scanJob(row)
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return vacancy.ErrNotFound
	}
	return nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]vacancy.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]vacancy.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}
