// Package controller wires user intents to the task list and pushes the
// resulting view to its collaborators. It owns the current filter
// selection and the inline edit state; it holds no task data of its own.
package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/filter"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/logger"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/stats"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/tasklist"
)

// Confirmer answers yes/no for destructive operations. A false answer
// must leave the collection exactly as it was.
type Confirmer interface {
	Confirm(message string) bool
}

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

// Notifier shows short transient messages.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// Renderer receives the filtered view and the stats over the full
// collection after every state change.
type Renderer interface {
	Render(view []*task.Task, st stats.Stats, editing EditState)
}

// EditState marks at most one task as being edited inline.
type EditState struct {
	Active bool
	TaskID int64
}

type Controller struct {
	list      *tasklist.TaskList
	confirmer Confirmer
	notifier  Notifier
	renderer  Renderer
	selection filter.Selection
	editing   EditState
}

func New(list *tasklist.TaskList, confirmer Confirmer, notifier Notifier, renderer Renderer) *Controller {
	return &Controller{
		list:      list,
		confirmer: confirmer,
		notifier:  notifier,
		renderer:  renderer,
		selection: filter.SelectionAll,
	}
}

// Refresh recomputes the view and stats from the current collection and
// hands them to the renderer.
func (c *Controller) Refresh() {
	tasks := c.list.Tasks()
	view := filter.Apply(tasks, c.selection)
	c.renderer.Render(view, stats.Calculate(tasks), c.editing)
}

func (c *Controller) AddTask(ctx context.Context, text string) {
	created, err := c.list.Add(ctx, text)
	if err != nil {
		var busErr *tasklist.BusinessError
		if errors.As(err, &busErr) {
			c.notifier.Notify(NoticeError, "A task needs some text first!")
			return
		}
		logger.Error("Controller: add failed", err)
		c.notifier.Notify(NoticeError, "Could not add the task")
		return
	}

	c.notifier.Notify(NoticeSuccess, fmt.Sprintf("A wild %s task appeared!", created.Category))
	c.Refresh()
}

func (c *Controller) ToggleTask(ctx context.Context, id int64) {
	if !c.list.Toggle(ctx, id) {
		logger.Warn("Controller: toggle on unknown task", zap.Int64("id", id))
		return
	}
	c.Refresh()
}

func (c *Controller) DeleteTask(ctx context.Context, id int64) {
	tsk, ok := c.list.Get(id)
	if !ok {
		return
	}

	if !c.confirmer.Confirm(fmt.Sprintf("Release %q?", tsk.Text)) {
		return
	}

	if c.editing.Active && c.editing.TaskID == id {
		c.editing = EditState{}
	}
	c.list.Remove(ctx, id)
	c.notifier.Notify(NoticeSuccess, "Task released")
	c.Refresh()
}

func (c *Controller) ClearAll(ctx context.Context) {
	total := c.list.Len()
	if total == 0 {
		c.notifier.Notify(NoticeInfo, "Nothing to release")
		return
	}

	if !c.confirmer.Confirm(fmt.Sprintf("Release all %d tasks? This cannot be undone.", total)) {
		return
	}

	c.editing = EditState{}
	released := c.list.RemoveAll(ctx)
	c.notifier.Notify(NoticeSuccess, fmt.Sprintf("Released %d tasks", released))
	c.Refresh()
}

func (c *Controller) CompleteAllTasks(ctx context.Context) {
	pending := stats.Calculate(c.list.Tasks()).Pending
	if pending == 0 {
		c.notifier.Notify(NoticeInfo, "Nothing pending to complete")
		return
	}

	if !c.confirmer.Confirm(fmt.Sprintf("Complete all %d pending tasks?", pending)) {
		return
	}

	completed := c.list.CompleteAll(ctx)
	c.notifier.Notify(NoticeSuccess, fmt.Sprintf("Completed %d tasks", completed))
	c.Refresh()
}

func (c *Controller) ResetAllTasks(ctx context.Context) {
	completed := stats.Calculate(c.list.Tasks()).Completed
	if completed == 0 {
		c.notifier.Notify(NoticeInfo, "Nothing completed to reset")
		return
	}

	if !c.confirmer.Confirm(fmt.Sprintf("Reset %d completed tasks to pending?", completed)) {
		return
	}

	reset := c.list.ResetAll(ctx)
	c.notifier.Notify(NoticeSuccess, fmt.Sprintf("Reset %d tasks", reset))
	c.Refresh()
}

// SelectFilter switches the current view. Invalid selections are ignored.
func (c *Controller) SelectFilter(sel filter.Selection) {
	if !sel.Valid() {
		logger.Warn("Controller: ignoring unknown filter", zap.String("selection", string(sel)))
		return
	}
	c.selection = sel
	c.Refresh()
}

// CycleFilter advances to the next view in the fixed order.
func (c *Controller) CycleFilter() {
	c.SelectFilter(c.selection.Next())
}

func (c *Controller) Selection() filter.Selection {
	return c.selection
}

// StartEdit begins inline editing of the given task and returns its
// current text for the input field. Starting an edit while another is
// active simply moves the edit to the new task.
func (c *Controller) StartEdit(id int64) (string, bool) {
	tsk, ok := c.list.Get(id)
	if !ok {
		return "", false
	}
	c.editing = EditState{Active: true, TaskID: id}
	c.Refresh()
	return tsk.Text, true
}

// SubmitEdit saves the edited text. Empty text keeps the edit open and
// the task unchanged.
func (c *Controller) SubmitEdit(ctx context.Context, text string) {
	if !c.editing.Active {
		return
	}

	ok, err := c.list.UpdateText(ctx, c.editing.TaskID, text)
	if err != nil {
		c.notifier.Notify(NoticeError, "A task needs some text first!")
		return
	}
	if !ok {
		// The task vanished while being edited.
		c.editing = EditState{}
		c.Refresh()
		return
	}

	c.editing = EditState{}
	c.notifier.Notify(NoticeSuccess, "Task updated")
	c.Refresh()
}

func (c *Controller) CancelEdit() {
	if !c.editing.Active {
		return
	}
	c.editing = EditState{}
	c.Refresh()
}

func (c *Controller) Editing() EditState {
	return c.editing
}
