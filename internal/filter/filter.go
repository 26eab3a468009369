package filter

import (
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
)

// Selection is the process-wide view filter. It is never persisted.
type Selection string

const SelectionAll Selection = "all"
const SelectionCompleted Selection = "completed"
const SelectionPending Selection = "pending"

func (s Selection) Valid() bool {
	return s == SelectionAll || s == SelectionCompleted || s == SelectionPending
}

// Next cycles all -> pending -> completed -> all.
func (s Selection) Next() Selection {
	switch s {
	case SelectionAll:
		return SelectionPending
	case SelectionPending:
		return SelectionCompleted
	default:
		return SelectionAll
	}
}

// Apply derives the filtered view: an order-preserving subsequence of
// tasks. The input is never mutated; the result is always a fresh slice.
func Apply(tasks []*task.Task, sel Selection) []*task.Task {
	view := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		switch sel {
		case SelectionCompleted:
			if !t.Completed {
				continue
			}
		case SelectionPending:
			if t.Completed {
				continue
			}
		}
		view = append(view, t)
	}
	return view
}
