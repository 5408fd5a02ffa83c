package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/apstld/freelance-alert-bot/internal/modules/stats/domain"
	"github.com/samber/oops"
)

// FileStorage implements stats.Repository using the file system. Writes go
// through a temp file and rename so a crashed worker never leaves a torn
// snapshot behind.
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates a new file-based stats repository
func NewFileStorage(path string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, oops.With("path", path, "context", "failed to create stats directory").Wrap(err)
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) Write(_ context.Context, stats *domain.CycleStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return oops.With("path", s.path, "context", "failed to marshal stats").Wrap(err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return oops.With("path", tmp, "context", "failed to write stats").Wrap(err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStorage) Read(_ context.Context) (*domain.CycleStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, oops.With("path", s.path, "context", "failed to read stats").Wrap(err)
	}

	var stats domain.CycleStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, oops.With("path", s.path, "context", "failed to unmarshal stats").Wrap(err)
	}
	return &stats, nil
}
