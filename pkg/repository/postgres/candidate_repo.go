package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruit/pkg/candidate"
)

// CandidateRepository reads and writes both intake tables.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

const uploadSelect = `
SELECT c.id, c.nome, c.telefone, c.usuario, c.score, c.resumo_ia, c.status, c.perfil_comportamental,
	c.sexo, c.escolaridade, c.idade, c.created_at,
	c.vaga_id, j.titulo, c.curriculo_url, c.curriculo_nome, c.curriculo_texto, c.data_triagem
FROM candidates c
LEFT JOIN jobs j ON j.id = c.vaga_id`

const chatSelect = `
SELECT c.id, c.nome, c.telefone, c.usuario, c.score, c.resumo_ia, c.status, c.perfil_comportamental,
	c.sexo, c.escolaridade, c.idade, c.created_at,
	c.vaga_texto, c.vaga_id, j.titulo
FROM chat_candidates c
LEFT JOIN jobs j ON j.id = c.vaga_id`

func commonDest(c *candidate.RowCommon) []any {
	return []any{&c.ID, &c.Name, &c.Phone, &c.Owners, &c.Score, &c.AISummary, &c.Status,
		&c.BehavioralProfile, &c.Sex, &c.Education, &c.Age, &c.CreatedAt}
}

func scanUpload(row pgx.Row) (candidate.Record, error) {
	var u candidate.UploadRow
	dest := append(commonDest(&u.RowCommon), &u.JobID, &u.JobTitle, &u.ResumeURL, &u.ResumeName, &u.ResumeText, &u.ScreenedAt)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Record{}, candidate.ErrNotFound
		}
		return candidate.Record{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return candidate.FromUploadRow(u), nil
}

func scanChat(row pgx.Row) (candidate.Record, error) {
	var c candidate.ChatRow
	dest := append(commonDest(&c.RowCommon), &c.JobText, &c.JobID, &c.JobTitle)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Record{}, candidate.ErrNotFound
		}
		return candidate.Record{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return candidate.FromChatRow(c), nil
}

func (r *CandidateRepository) CreateUpload(ctx context.Context, u candidate.UploadRow) (candidate.Record, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO candidates (nome, telefone, vaga_id, usuario, score, resumo_ia, status, curriculo_url,
	curriculo_nome, curriculo_texto, data_triagem)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`, u.Name, u.Phone, u.JobID, ownersOrEmpty(u.Owners), u.Score, u.AISummary, u.Status, u.ResumeURL,
		u.ResumeName, u.ResumeText, u.ScreenedAt).Scan(&id)
	if err != nil {
		return candidate.Record{}, fmt.Errorf("insert candidate: %w", err)
	}
	return r.Get(ctx, candidate.Ref{ID: id, Source: candidate.SourceUpload})
}

func (r *CandidateRepository) CreateChat(ctx context.Context, c candidate.ChatRow) (candidate.Record, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO chat_candidates (nome, telefone, vaga_texto, vaga_id, usuario, score, resumo_ia, status,
	sexo, escolaridade, idade)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`, c.Name, c.Phone, c.JobText, c.JobID, ownersOrEmpty(c.Owners), c.Score, c.AISummary, c.Status,
		c.Sex, c.Education, c.Age).Scan(&id)
	if err != nil {
		return candidate.Record{}, fmt.Errorf("insert chat candidate: %w", err)
	}
	return r.Get(ctx, candidate.Ref{ID: id, Source: candidate.SourceChat})
}

func (r *CandidateRepository) ListUpload(ctx context.Context) ([]candidate.Record, error) {
	return r.list(ctx, uploadSelect+` ORDER BY c.id`, scanUpload)
}

func (r *CandidateRepository) ListChat(ctx context.Context) ([]candidate.Record, error) {
	return r.list(ctx, chatSelect+` ORDER BY c.id`, scanChat)
}

func (r *CandidateRepository) list(ctx context.Context, query string, scan func(pgx.Row) (candidate.Record, error)) ([]candidate.Record, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]candidate.Record, 0)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *CandidateRepository) Get(ctx context.Context, ref candidate.Ref) (candidate.Record, error) {
	switch ref.Source {
	case candidate.SourceChat:
		return scanChat(r.pool.QueryRow(ctx, chatSelect+` WHERE c.id = $1`, ref.ID))
	case candidate.SourceUpload, "":
		return scanUpload(r.pool.QueryRow(ctx, uploadSelect+` WHERE c.id = $1`, ref.ID))
	}
	return candidate.Record{}, candidate.ErrNotFound
}

func (r *CandidateRepository) UpdateStatus(ctx context.Context, ref candidate.Ref, st candidate.Status) (candidate.Record, error) {
	if err := r.setColumn(ctx, ref, "status", string(st)); err != nil {
		return candidate.Record{}, err
	}
	return r.Get(ctx, ref)
}

func (r *CandidateRepository) SetBehavioralProfile(ctx context.Context, ref candidate.Ref, profile string) error {
	return r.setColumn(ctx, ref, "perfil_comportamental", profile)
}

// setColumn performs the narrow single-column writes. column is never user input.
func (r *CandidateRepository) setColumn(ctx context.Context, ref candidate.Ref, column, value string) error {
	table := "candidates"
	if ref.Source == candidate.SourceChat {
		table = "chat_candidates"
	}
	cmd, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE id = $1`, table, column), ref.ID, value)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func ownersOrEmpty(owners []int64) []int64 {
	if owners == nil {
		return []int64{}
	}
	return owners
}
