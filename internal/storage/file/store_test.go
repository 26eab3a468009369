package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage/file"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	created := time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC)
	tasks := []*task.Task{
		{ID: 2, Text: "Catch Pikachu", Completed: false, CreatedAt: created, Category: task.CategoryElectric},
		{ID: 1, Text: "Train Squirtle", Completed: true, CreatedAt: created.Add(-time.Hour), Category: task.CategoryWater},
	}

	require.NoError(t, store.Save(ctx, tasks))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, int64(2), loaded[0].ID)
	assert.Equal(t, "Catch Pikachu", loaded[0].Text)
	assert.False(t, loaded[0].Completed)
	assert.Equal(t, task.CategoryElectric, loaded[0].Category)
	assert.Equal(t, created.Unix(), loaded[0].CreatedAt.Unix())

	assert.True(t, loaded[1].Completed)
	assert.Equal(t, task.CategoryWater, loaded[1].Category)
}

func TestStore_Load_MissingFile(t *testing.T) {
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_Load_CorruptData(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "not JSON at all",
			payload: "}}}garbage{{{",
		},
		{
			name:    "wrong shape",
			payload: `{"foo": 1}`,
		},
		{
			name:    "unknown category",
			payload: `[{"id":1,"text":"x","completed":false,"createdAt":"2026-08-27T14:30:00Z","category":"Dragon"}]`,
		},
		{
			name:    "unparseable timestamp",
			payload: `[{"id":1,"text":"x","completed":false,"createdAt":"yesterday","category":"Fire"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store, err := file.New(dir)
			require.NoError(t, err)

			path := filepath.Join(dir, storage.Key+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.payload), 0o644))

			loaded, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, loaded)
		})
	}
}

func TestStore_Save_Overwrites(t *testing.T) {
	ctx := context.Background()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	first := []*task.Task{
		{ID: 1, Text: "old", CreatedAt: time.Now(), Category: task.CategoryNormal},
		{ID: 2, Text: "older", CreatedAt: time.Now(), Category: task.CategoryFire},
	}
	require.NoError(t, store.Save(ctx, first))

	second := []*task.Task{
		{ID: 3, Text: "only survivor", CreatedAt: time.Now(), Category: task.CategoryGrass},
	}
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "only survivor", loaded[0].Text)
}

func TestStore_Save_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, []*task.Task{
		{ID: 1, Text: "doomed", CreatedAt: time.Now(), Category: task.CategoryPsychic},
	}))
	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_HealthCheck(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	assert.NoError(t, store.HealthCheck(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, store.HealthCheck(context.Background()))
}
