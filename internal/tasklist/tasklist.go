// Package tasklist holds the canonical in-memory collection and its
// operations. Every mutation persists the full collection through the
// configured store; the in-memory state stays authoritative when a save
// fails.
package tasklist

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/logger"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage"
)

type TaskList struct {
	mu     sync.RWMutex
	tasks  []*task.Task
	store  storage.Store
	rng    *rand.Rand
	now    func() time.Time
	lastID int64
}

type Option func(*TaskList)

// WithRandSource replaces the category roll source, mostly for tests.
func WithRandSource(src rand.Source) Option {
	return func(l *TaskList) {
		l.rng = rand.New(src)
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *TaskList) {
		l.now = now
	}
}

func New(store storage.Store, opts ...Option) *TaskList {
	list := &TaskList{
		tasks: []*task.Task{},
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(list)
	}
	return list
}

// Load replaces the collection with whatever the store holds. The store
// already maps missing or corrupt data to an empty collection.
func (l *TaskList) Load(ctx context.Context) error {
	tasks, err := l.store.Load(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.tasks = tasks
	l.lastID = 0
	for _, t := range l.tasks {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}

	logger.Info("TaskList: loaded collection", zap.Int("count", len(l.tasks)))
	return nil
}

// Add prepends a new pending task with a freshly rolled category.
// Whitespace-only text is rejected before anything is allocated.
func (l *TaskList) Add(ctx context.Context, text string) (*task.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, NewValidationError("text", "must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	newTask := &task.Task{
		ID:        l.nextID(),
		Text:      trimmed,
		Completed: false,
		CreatedAt: l.now(),
		Category:  task.RandomCategory(l.rng),
	}

	l.tasks = append([]*task.Task{newTask}, l.tasks...)
	l.persist(ctx)
	return newTask, nil
}

// nextID derives ids from the clock but never repeats one, even when two
// tasks land inside the same millisecond. Callers hold the lock.
func (l *TaskList) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// Toggle flips the completion of the task with the given id. Unknown ids
// are a no-op and report false.
func (l *TaskList) Toggle(ctx context.Context, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range l.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			l.persist(ctx)
			return true
		}
	}
	return false
}

// UpdateText replaces the text of the task with the given id. Empty text
// after trimming is rejected and the task keeps its old text.
func (l *TaskList) UpdateText(ctx context.Context, id int64, text string) (bool, error) {
	opt := task.WithText(text)
	if opt == nil {
		return false, NewValidationError("text", "must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range l.tasks {
		if t.ID == id {
			opt(t)
			l.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes the task with the given id. Unknown ids are a no-op.
func (l *TaskList) Remove(ctx context.Context, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, t := range l.tasks {
		if t.ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			l.persist(ctx)
			return true
		}
	}
	return false
}

// RemoveAll empties the collection and reports how many tasks were
// dropped. An already-empty collection does not touch the store.
func (l *TaskList) RemoveAll(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := len(l.tasks)
	if removed == 0 {
		return 0
	}

	l.tasks = []*task.Task{}
	l.persist(ctx)
	return removed
}

// CompleteAll marks every pending task completed and reports how many
// actually flipped. Nothing pending means nothing persisted.
func (l *TaskList) CompleteAll(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	flipped := 0
	for _, t := range l.tasks {
		if !t.Completed {
			t.Completed = true
			flipped++
		}
	}
	if flipped > 0 {
		l.persist(ctx)
	}
	return flipped
}

// ResetAll marks every completed task pending again and reports how many
// actually flipped.
func (l *TaskList) ResetAll(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	flipped := 0
	for _, t := range l.tasks {
		if t.Completed {
			t.Completed = false
			flipped++
		}
	}
	if flipped > 0 {
		l.persist(ctx)
	}
	return flipped
}

// Tasks returns a snapshot of the collection, newest first.
func (l *TaskList) Tasks() []*task.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]*task.Task, len(l.tasks))
	copy(snapshot, l.tasks)
	return snapshot
}

func (l *TaskList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tasks)
}

func (l *TaskList) Get(id int64) (*task.Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// persist writes the collection through the store. A failed save is
// logged and swallowed so the session keeps working from memory. Callers
// hold the lock.
func (l *TaskList) persist(ctx context.Context) {
	if err := l.store.Save(ctx, l.tasks); err != nil {
		logger.Error("TaskList: save failed, keeping in-memory state", err,
			zap.Int("count", len(l.tasks)))
	}
}
