package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage persists files to the local filesystem.
type LocalStorage struct {
	baseDir string
	now     func() time.Time
}

// NewLocalStorage creates a LocalStorage instance. The directory is created if
// it does not exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		baseDir = "datas/uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, now: time.Now}, nil
}

// LocalBaseDir returns the root directory used for storing files.
func (s *LocalStorage) LocalBaseDir() string {
	return s.baseDir
}

// Save writes the bytes under baseDir and returns the slash-separated key.
// Files are written to a temporary name first and renamed into place, so a
// reader never sees a partial image.
func (s *LocalStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := buildObjectPath(opts.Category, opts.BaseName, opts.Extension, s.now())
	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if opts.SkipIfExists {
		if _, err := os.Stat(absPath); err == nil {
			return key, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat file: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmpName, absPath); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename file: %w", err)
	}

	return key, nil
}

var _ Storage = (*LocalStorage)(nil)
var _ LocalBaseDirProvider = (*LocalStorage)(nil)
