package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	progressout "rightsdaily/internal/modules/progress/port/out"
	"rightsdaily/internal/platform/slug"
)

// FileStorage keeps one JSON file per key under the state directory.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

func NewFileStorage(statePath string) progressout.Storage {
	return &FileStorage{dir: statePath}
}

func (s *FileStorage) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(payload), true, nil
}

// Write replaces the file through a rename so a failed write leaves the
// previous payload intact.
func (s *FileStorage) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, slug.Make(key)+".json")
}
