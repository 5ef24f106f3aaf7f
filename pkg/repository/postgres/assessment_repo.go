package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/assessment"
	"github.com/artem13815/recruit/pkg/candidate"
)

const uniqueViolation = "23505"

// AssessmentRepository хранит анкеты и их результаты.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

const assessmentColumns = `id, candidato_id, candidato_origem, token, status, expira_em, created_at`

func scanAssessment(row pgx.Row) (assessment.Assessment, error) {
	var a assessment.Assessment
	var source, status string
	if err := row.Scan(&a.ID, &a.Candidate.ID, &source, &a.Token, &status, &a.ExpiresAt, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assessment.Assessment{}, assessment.ErrNotFound
		}
		return assessment.Assessment{}, err
	}
	a.Candidate.Source = candidate.Source(source)
	a.Status = assessment.Status(status)
	a.ExpiresAt = a.ExpiresAt.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func (r *AssessmentRepository) Create(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	src := a.Candidate.Source
	if src == "" {
		src = candidate.SourceUpload
	}
	return scanAssessment(r.pool.QueryRow(ctx, `
INSERT INTO assessments (candidato_id, candidato_origem, token, status, expira_em, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+assessmentColumns,
		a.Candidate.ID, string(src), a.Token, string(a.Status), a.ExpiresAt, a.CreatedAt))
}

func (r *AssessmentRepository) Get(ctx context.Context, id int64) (assessment.Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, id))
}

func (r *AssessmentRepository) GetByToken(ctx context.Context, token string) (assessment.Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE token = $1`, token))
}

func (r *AssessmentRepository) FirstForCandidate(ctx context.Context, ref candidate.Ref) (assessment.Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx, `
SELECT `+assessmentColumns+` FROM assessments
WHERE candidato_id = $1 AND candidato_origem = $2
ORDER BY id
LIMIT 1
`, ref.ID, string(ref.Source)))
}

// MarkCompleted only moves Pendente forward; completing twice is a no-op.
func (r *AssessmentRepository) MarkCompleted(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE assessments SET status = $2 WHERE id = $1 AND status = $3`,
		id, string(assessment.StatusCompleted), string(assessment.StatusPending))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

const resultColumns = `id, avaliacao_id, executor, comunicador, planejador, analista,
	respostas_passo1, respostas_passo2, respostas_passo3, analise_ia, created_at`

func scanResult(row pgx.Row) (assessment.Result, error) {
	var res assessment.Result
	err := row.Scan(&res.ID, &res.AssessmentID, &res.Executor, &res.Communicator, &res.Planner, &res.Analyst,
		&res.Step1, &res.Step2, &res.Step3, &res.Narrative, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assessment.Result{}, assessment.ErrResultNotFound
		}
		return assessment.Result{}, err
	}
	res.CreatedAt = res.CreatedAt.UTC()
	return res, nil
}

func (r *AssessmentRepository) CreateResult(ctx context.Context, res assessment.Result) (assessment.Result, error) {
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	out, err := scanResult(r.pool.QueryRow(ctx, `
INSERT INTO assessment_results (avaliacao_id, executor, comunicador, planejador, analista,
	respostas_passo1, respostas_passo2, respostas_passo3, analise_ia, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING `+resultColumns,
		res.AssessmentID, res.Executor, res.Communicator, res.Planner, res.Analyst,
		res.Step1, res.Step2, res.Step3, res.Narrative, res.CreatedAt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return assessment.Result{}, assessment.ErrAlreadyCompleted
		}
		return assessment.Result{}, err
	}
	return out, nil
}

func (r *AssessmentRepository) ResultByAssessment(ctx context.Context, assessmentID int64) (assessment.Result, error) {
	return scanResult(r.pool.QueryRow(ctx, `SELECT `+resultColumns+` FROM assessment_results WHERE avaliacao_id = $1`, assessmentID))
}
