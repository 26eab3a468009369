package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
)

// record is the wire shape of one task. CreatedAt travels as an RFC 3339
// string, so round trips hold timestamps to second precision.
type record struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	Category  string `json:"category"`
}

// Encode serializes the collection as a JSON array of records.
func Encode(tasks []*task.Task) ([]byte, error) {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = record{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
			Category:  string(t.Category),
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	return data, nil
}

// Decode rebuilds the collection from its serialized form. There is no
// schema version: any shape mismatch makes the whole payload corrupt and
// the caller is expected to discard it wholesale.
func Decode(data []byte) ([]*task.Task, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}

	tasks := make([]*task.Task, len(records))
	for i, r := range records {
		createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad createdAt %q: %w", i, r.CreatedAt, err)
		}
		category := task.Category(r.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("record %d: unknown category %q", i, r.Category)
		}
		if r.Text == "" {
			return nil, fmt.Errorf("record %d: empty text", i)
		}
		tasks[i] = &task.Task{
			ID:        r.ID,
			Text:      r.Text,
			Completed: r.Completed,
			CreatedAt: createdAt,
			Category:  category,
		}
	}
	return tasks, nil
}
