package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraenergy/prospect-quote-api/internal/models"
)

// LocalBucket is reported as the bucket name for files on disk.
const LocalBucket = "local"

// LocalStorage handles file storage on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	return &LocalStorage{basePath: abs}, nil
}

// Put writes body to basePath/key, creating intermediate directories.
func (s *LocalStorage) Put(ctx context.Context, key string, body []byte, contentType string) (*models.StoredDocument, error) {
	filePath, err := s.GetFullPath(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &models.StoredDocument{
		Bucket: LocalBucket,
		Key:    key,
		URL:    "file://" + filepath.ToSlash(filePath),
	}, nil
}

// GetFullPath maps a storage key to a path inside basePath.
func (s *LocalStorage) GetFullPath(key string) (string, error) {
	filePath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if filePath != s.basePath && !strings.HasPrefix(filePath, s.basePath+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return filePath, nil
}
