package task

import "strings"

type TaskOption func(*Task)

func WithText(text string) TaskOption {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return func(task *Task) {
		task.Text = trimmed
	}
}

func WithCompleted(completed bool) TaskOption {
	return func(task *Task) {
		task.Completed = completed
	}
}
