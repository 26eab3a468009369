package storage

import (
	"context"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
)

// Key is the single fixed key the whole collection is stored under.
const Key = "gotta-do-em-all.tasks"

// Store is the persistence adapter. Save overwrites the stored collection
// wholesale; Load returns an empty collection when the key is absent or the
// stored data is corrupt (it never fails startup for bad data).
type Store interface {
	Save(ctx context.Context, tasks []*task.Task) error
	Load(ctx context.Context) ([]*task.Task, error)
	HealthCheck(ctx context.Context) error
	Close()
}
