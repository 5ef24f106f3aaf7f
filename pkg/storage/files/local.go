// Package files keeps uploaded résumés on the local disk and serves them
// under a public base URL.
package files

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/recruit/pkg/candidate"
)

type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the directory served as static files.
func (s *LocalStore) Dir() string { return s.dir }

// Upload stores data under a fresh unique name keeping the original extension.
func (s *LocalStore) Upload(ctx context.Context, filename, _ string, data []byte) (candidate.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return candidate.StoredFile{}, err
	}
	base := filepath.Base(filename)
	stored := uuid.NewString() + strings.ToLower(filepath.Ext(base))
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		return candidate.StoredFile{}, fmt.Errorf("write %s: %w", stored, err)
	}
	return candidate.StoredFile{
		Name: base,
		URL:  s.baseURL + "/" + url.PathEscape(stored),
	}, nil
}
