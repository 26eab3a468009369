package stats

import (
	"math"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
)

// Stats are derived counts over the canonical collection.
// CompletionRate is a whole percentage, rounded half up; 0 for an empty
// collection.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int
}

// Calculate never mutates tasks.
func Calculate(tasks []*task.Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.CompletionRate = int(math.Round(100 * float64(st.Completed) / float64(st.Total)))
	}
	return st
}
