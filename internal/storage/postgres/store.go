// Package postgres keeps the serialized collection in a single row of a
// key-value table, preserving the fixed-key contract of the file backend.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/logger"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Storage: invalid postgres config", err)
		return nil, fmt.Errorf("parsing connection config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Storage: failed to create pool", err)
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Storage: ping failed", err)
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	logger.Info("Storage: connected to postgres")
	return &Store{pool: pool}, nil
}

// Migrate creates the key-value table the collection lives in.
func (s *Store) Migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		logger.Error("Storage: migration failed", err)
		return fmt.Errorf("creating kv_store: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, tasks []*task.Task) error {
	start := time.Now()

	data, err := storage.Encode(tasks)
	if err != nil {
		return err
	}

	query := `INSERT INTO kv_store (key, value, updated_at)
				VALUES ($1, $2, NOW())
			ON CONFLICT (key)
				DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, storage.Key, string(data)); err != nil {
		logger.Error("Storage: save failed", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("saving tasks: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Storage: slow save", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]*task.Task, error) {
	start := time.Now()

	query := `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := s.pool.QueryRow(ctx, query, storage.Key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*task.Task{}, nil
		}
		logger.Error("Storage: load failed", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	tasks, err := storage.Decode([]byte(value))
	if err != nil {
		// Corrupt state is discarded wholesale, never fatal.
		logger.Warn("Storage: discarding corrupt task data", zap.Error(err))
		return []*task.Task{}, nil
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Storage: slow load", zap.Duration("ms", time.Since(start)))
	}
	return tasks, nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Storage: ping failed", err)
		return fmt.Errorf("pinging postgres: %w", err)
	}
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
	logger.Info("Storage: closed postgres connections")
}
