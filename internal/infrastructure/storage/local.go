// Package storage provides image storage backends.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// LocalStorage writes uploaded images to a directory on disk and serves
// them back under a public base URL.
type LocalStorage struct {
	dir     string
	baseURL string
}

var _ ports.ImageStorage = (*LocalStorage)(nil)

// NewLocalStorage ensures the directory exists and returns a LocalStorage.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Store saves the content under a unique name derived from the original
// filename and returns the public URL.
func (s *LocalStorage) Store(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return s.baseURL + "/" + path.Clean(name), nil
}
