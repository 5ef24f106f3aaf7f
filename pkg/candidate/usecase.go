package candidate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/vacancy"
)

// DefaultMaxFileBytes is the per-file upload limit.
const DefaultMaxFileBytes = 5 << 20

// UploadFile is one résumé received from the recruiter.
type UploadFile struct {
	Filename string
	MimeType string
	Data     []byte
}

// ChatIntake is the payload the chat bot posts for a new candidate.
type ChatIntake struct {
	Name      string   `json:"nome"`
	Phone     string   `json:"telefone"`
	Job       JobLink  `json:"vaga"`
	Owners    []int64  `json:"usuario"`
	Score     *float64 `json:"score"`
	AISummary *string  `json:"resumo_ia"`
	Sex       *string  `json:"sexo"`
	Education *string  `json:"escolaridade"`
	Age       *int32   `json:"idade"`
}

// UseCase — сценарии приёма кандидатов и смены статуса.
type UseCase interface {
	UploadResumes(ctx context.Context, userID, jobID int64, files []UploadFile) ([]Record, error)
	IngestChat(ctx context.Context, in ChatIntake) (Record, error)
	UpdateStatus(ctx context.Context, ref Ref, status string) (Record, error)
}

// JobFinder resolves the job a candidate is attached to.
type JobFinder interface {
	Get(ctx context.Context, id int64) (vacancy.Job, error)
}

type service struct {
	repo     Repository
	jobs     JobFinder
	files    FileStore
	maxBytes int
	logger   *zap.Logger
}

func NewService(repo Repository, jobs JobFinder, files FileStore, maxBytes int, logger *zap.Logger) UseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, jobs: jobs, files: files, maxBytes: maxBytes, logger: logger}
}

// UploadResumes stores every file and creates one upload-table candidate per
// file. Sizes are checked up front so an oversized file rejects the batch
// before anything is written.
func (s *service) UploadResumes(ctx context.Context, userID, jobID int64, files []UploadFile) ([]Record, error) {
	if userID <= 0 || jobID <= 0 || len(files) == 0 {
		return nil, ErrValidation("job, user and résumé files are required")
	}
	for _, f := range files {
		if len(f.Data) > s.maxBytes {
			return nil, ErrValidation(fmt.Sprintf("file %q is too large, the limit is %dMB", f.Filename, s.maxBytes>>20))
		}
	}
	// uploads go only to the recruiter's own jobs; checked before any file is written
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(userID) {
		return nil, vacancy.ErrNotFound
	}

	out := make([]Record, 0, len(files))
	for _, f := range files {
		stored, err := s.files.Upload(ctx, f.Filename, f.MimeType, f.Data)
		if err != nil {
			return out, fmt.Errorf("upload %q: %w", f.Filename, err)
		}

		var text *string
		if txt, err := ExtractResumeText(f.Filename, f.Data); err != nil {
			s.logger.Debug("resume text not extracted", zap.String("file", f.Filename), zap.Error(err))
		} else if txt != "" {
			text = &txt
		}

		status := string(StatusScreening)
		now := time.Now().UTC()
		row := UploadRow{
			RowCommon: RowCommon{
				Name:      nameFromFilename(f.Filename),
				Owners:    []int64{userID},
				Status:    &status,
				CreatedAt: now,
			},
			JobID:      &jobID,
			ResumeURL:  stored.URL,
			ResumeName: stored.Name,
			ResumeText: text,
			ScreenedAt: &now,
		}
		rec, err := s.repo.CreateUpload(ctx, row)
		if err != nil {
			return out, fmt.Errorf("create candidate for %q: %w", f.Filename, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *service) IngestChat(ctx context.Context, in ChatIntake) (Record, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Record{}, ErrValidation("candidate name is required")
	}
	status := string(StatusScreening)
	row := ChatRow{
		RowCommon: RowCommon{
			Name:      name,
			Owners:    in.Owners,
			Score:     in.Score,
			AISummary: in.AISummary,
			Status:    &status,
			Sex:       in.Sex,
			Education: in.Education,
			Age:       in.Age,
			CreatedAt: time.Now().UTC(),
		},
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		row.Phone = &phone
	}
	switch in.Job.Kind() {
	case LinkTitle:
		t, _ := in.Job.Title()
		row.JobText = &t
	case LinkJob:
		ref, _ := in.Job.Ref()
		if _, err := s.jobs.Get(ctx, ref.ID); err != nil {
			return Record{}, err
		}
		row.JobID = &ref.ID
	}
	return s.repo.CreateChat(ctx, row)
}

func (s *service) UpdateStatus(ctx context.Context, ref Ref, status string) (Record, error) {
	if ref.ID <= 0 {
		return Record{}, ErrValidation("candidate id is required")
	}
	st, err := ParseStatus(status)
	if err != nil {
		return Record{}, ErrValidation(err.Error())
	}
	return s.repo.UpdateStatus(ctx, ref, st)
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
