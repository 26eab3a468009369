// Package file persists the task collection as a single JSON document
// under the fixed storage key inside a data directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/logger"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage"
)

type Store struct {
	mtx  sync.Mutex
	path string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{
		path: filepath.Join(dir, storage.Key+".json"),
	}, nil
}

func (s *Store) Save(ctx context.Context, tasks []*task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := storage.Encode(tasks)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*task.Task{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	tasks, err := storage.Decode(data)
	if err != nil {
		// Corrupt state is discarded wholesale, never fatal.
		logger.Warn("Storage: discarding corrupt task data",
			zap.String("path", s.path),
			zap.Error(err))
		return []*task.Task{}, nil
	}
	return tasks, nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	return nil
}

func (s *Store) Close() {}
