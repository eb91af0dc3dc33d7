package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalConfig struct {
	Dir     string // e.g. ./uploads
	BaseURL string // e.g. http://localhost:8080/uploads
}

// LocalStorage keeps objects on the local filesystem. Used in development
// and tests; the path layout mirrors the object-store keys.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(cfg LocalConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	return &LocalStorage{
		dir:     cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

func (l *LocalStorage) Put(_ context.Context, path string, r io.Reader, _ int64, _ string) error {
	path = normalizePath(path)
	fullPath := filepath.Join(l.dir, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

func (l *LocalStorage) Delete(_ context.Context, path string) error {
	path = normalizePath(path)
	fullPath := filepath.Join(l.dir, filepath.FromSlash(path))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		// already gone
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	return nil
}

func (l *LocalStorage) PublicURL(path string) string {
	return l.baseURL + "/" + normalizePath(path)
}
