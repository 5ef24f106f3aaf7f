package candidate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Source — канал, через который кандидат попал в систему.
type Source string

const (
	// SourceUpload: résumé uploaded by the recruiter.
	SourceUpload Source = "upload"
	// SourceChat: candidate collected by the external chat bot.
	SourceChat Source = "chat"
)

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceUpload, SourceChat:
		return Source(s), nil
	case "":
		return SourceUpload, nil
	}
	return "", fmt.Errorf("unknown candidate source %q", s)
}

// Status mirrors the screening pipeline columns.
type Status string

const (
	StatusScreening Status = "Triagem"
	StatusInterview Status = "Entrevista"
	StatusApproved  Status = "Aprovado"
	StatusRejected  Status = "Reprovado"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusScreening, StatusInterview, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown candidate status %q", s)
}

// Ref identifies a candidate across both intake tables.
type Ref struct {
	ID     int64  `json:"id"`
	Source Source `json:"source"`
}

// Record — нормализованное представление кандидата из любого канала.
type Record struct {
	ID                int64      `json:"id"`
	Source            Source     `json:"source"`
	Name              string     `json:"nome"`
	Phone             string     `json:"telefone,omitempty"`
	Job               JobLink    `json:"vaga"`
	Owners            []int64    `json:"usuario"`
	Score             *float64   `json:"score"`
	AISummary         *string    `json:"resumoIa"`
	Status            Status     `json:"status,omitempty"`
	BehavioralProfile *string    `json:"perfilComportamental"`
	ResumeURL         string     `json:"curriculoUrl,omitempty"`
	ResumeName        string     `json:"curriculoNome,omitempty"`
	ResumeText        string     `json:"-"`
	ScreenedAt        *time.Time `json:"dataTriagem,omitempty"`
	Sex               *string    `json:"sexo,omitempty"`
	Education         *string    `json:"escolaridade,omitempty"`
	Age               *int       `json:"idade,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func (r Record) Ref() Ref { return Ref{ID: r.ID, Source: r.Source} }

// OwnedBy reports whether userID is listed among the record owners.
func (r Record) OwnedBy(userID int64) bool {
	return slices.Contains(r.Owners, userID)
}

var ErrNotFound = errors.New("candidate not found")

// Repository — порт доступа к обеим таблицам кандидатов.
type Repository interface {
	CreateUpload(ctx context.Context, row UploadRow) (Record, error)
	CreateChat(ctx context.Context, row ChatRow) (Record, error)
	ListUpload(ctx context.Context) ([]Record, error)
	ListChat(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, ref Ref) (Record, error)
	UpdateStatus(ctx context.Context, ref Ref, status Status) (Record, error)
	SetBehavioralProfile(ctx context.Context, ref Ref, profile string) error
}

// StoredFile is a binary object persisted by a FileStore.
type StoredFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FileStore uploads binary files and returns their public URL.
type FileStore interface {
	Upload(ctx context.Context, filename, mimeType string, data []byte) (StoredFile, error)
}
