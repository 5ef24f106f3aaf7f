package candidate

import (
	"strings"
	"time"
)

// RowCommon holds the columns both intake tables share.
type RowCommon struct {
	ID                int64
	Name              string
	Phone             *string
	Owners            []int64
	Score             *float64
	AISummary         *string
	Status            *string
	BehavioralProfile *string
	Sex               *string
	Education         *string
	Age               *int32
	CreatedAt         time.Time
}

// UploadRow is a row of the résumé upload table. Jobs are always linked by
// reference there.
type UploadRow struct {
	RowCommon
	JobID      *int64
	JobTitle   *string
	ResumeURL  string
	ResumeName string
	ResumeText *string
	ScreenedAt *time.Time
}

// ChatRow is a row of the chat intake table. The bot records the job as the
// free text the candidate typed; a recruiter may later link it to a job.
type ChatRow struct {
	RowCommon
	JobText  *string
	JobID    *int64
	JobTitle *string
}

// FromUploadRow adapts an upload-table row to a Record.
func FromUploadRow(row UploadRow) Record {
	rec := fromCommon(row.RowCommon, SourceUpload)
	if row.JobID != nil {
		rec.Job = RefLink(JobRef{ID: *row.JobID, Value: deref(row.JobTitle)})
	}
	rec.ResumeURL = row.ResumeURL
	rec.ResumeName = row.ResumeName
	rec.ResumeText = deref(row.ResumeText)
	rec.ScreenedAt = row.ScreenedAt
	return rec
}

// FromChatRow adapts a chat-table row to a Record. An explicit job reference
// wins over the free text.
func FromChatRow(row ChatRow) Record {
	rec := fromCommon(row.RowCommon, SourceChat)
	switch {
	case row.JobID != nil:
		rec.Job = RefLink(JobRef{ID: *row.JobID, Value: deref(row.JobTitle)})
	case row.JobText != nil:
		rec.Job = TitleLink(*row.JobText)
	}
	return rec
}

func fromCommon(c RowCommon, src Source) Record {
	rec := Record{
		ID:                c.ID,
		Source:            src,
		Name:              c.Name,
		Phone:             deref(c.Phone),
		Owners:            c.Owners,
		Score:             c.Score,
		AISummary:         c.AISummary,
		BehavioralProfile: c.BehavioralProfile,
		Sex:               c.Sex,
		Education:         c.Education,
		CreatedAt:         c.CreatedAt,
	}
	if rec.Owners == nil {
		rec.Owners = []int64{}
	}
	if c.Status != nil {
		if st, err := ParseStatus(*c.Status); err == nil {
			rec.Status = st
		}
	}
	if c.Age != nil {
		age := int(*c.Age)
		rec.Age = &age
	}
	return rec
}

// nameFromFilename derives a display name from an uploaded file name.
func nameFromFilename(filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return "Novo Candidato"
	}
	return base
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
