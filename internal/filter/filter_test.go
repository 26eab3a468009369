package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/filter"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
)

func sampleTasks() []*task.Task {
	return []*task.Task{
		{ID: 4, Text: "newest", Completed: false},
		{ID: 3, Text: "done recently", Completed: true},
		{ID: 2, Text: "still open", Completed: false},
		{ID: 1, Text: "oldest done", Completed: true},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		selection filter.Selection
		wantIDs   []int64
	}{
		{
			name:      "all is the identity view",
			selection: filter.SelectionAll,
			wantIDs:   []int64{4, 3, 2, 1},
		},
		{
			name:      "completed keeps only completed, in order",
			selection: filter.SelectionCompleted,
			wantIDs:   []int64{3, 1},
		},
		{
			name:      "pending keeps only pending, in order",
			selection: filter.SelectionPending,
			wantIDs:   []int64{4, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := sampleTasks()
			view := filter.Apply(tasks, tt.selection)

			gotIDs := make([]int64, len(view))
			for i, tsk := range view {
				gotIDs[i] = tsk.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)

			// The canonical collection is untouched.
			require.Len(t, tasks, 4)
			assert.Equal(t, int64(4), tasks[0].ID)
		})
	}
}

func TestApply_PartitionsCollection(t *testing.T) {
	tasks := sampleTasks()

	completed := filter.Apply(tasks, filter.SelectionCompleted)
	pending := filter.Apply(tasks, filter.SelectionPending)
	all := filter.Apply(tasks, filter.SelectionAll)

	assert.Len(t, all, len(tasks))
	assert.Equal(t, len(tasks), len(completed)+len(pending))

	seen := make(map[int64]bool)
	for _, tsk := range append(completed, pending...) {
		assert.False(t, seen[tsk.ID], "task %d appears in both partitions", tsk.ID)
		seen[tsk.ID] = true
	}
}

func TestApply_EmptyCollection(t *testing.T) {
	for _, sel := range []filter.Selection{filter.SelectionAll, filter.SelectionCompleted, filter.SelectionPending} {
		assert.Empty(t, filter.Apply(nil, sel))
	}
}

func TestSelection_Next(t *testing.T) {
	assert.Equal(t, filter.SelectionPending, filter.SelectionAll.Next())
	assert.Equal(t, filter.SelectionCompleted, filter.SelectionPending.Next())
	assert.Equal(t, filter.SelectionAll, filter.SelectionCompleted.Next())
}
