// Package tui is the terminal front end. It renders the filtered view,
// collects input for new and edited tasks, and stages destructive
// operations behind a yes/no modal.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/controller"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/filter"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/stats"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirm
)

type noticeExpiredMsg struct {
	seq int
}

// modalConfirmer bridges the synchronous Confirm call to the modal. The
// first call records the prompt and declines, which opens the modal; when
// the user approves, the staged action runs again with approve set and
// the same call succeeds.
type modalConfirmer struct {
	approve bool
	asked   bool
	prompt  string
}

func (c *modalConfirmer) Confirm(message string) bool {
	if c.approve {
		return true
	}
	c.asked = true
	c.prompt = message
	return false
}

func (c *modalConfirmer) reset() {
	c.asked = false
	c.prompt = ""
}

type Model struct {
	ctrl *controller.Controller
	ctx  context.Context

	view    []*task.Task
	stats   stats.Stats
	editing controller.EditState

	input  textinput.Model
	cursor int
	mode   mode

	confirm       modalConfirmer
	pendingAction func()

	notice     string
	noticeKind controller.NoticeKind
	noticeSeq  int
	tickedSeq  int
	noticeTTL  time.Duration

	inlineEdit bool
	width      int
}

func New(noticeTTL time.Duration, inlineEdit bool) *Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 256
	input.Width = 40

	return &Model{
		ctx:        context.Background(),
		input:      input,
		noticeTTL:  noticeTTL,
		inlineEdit: inlineEdit,
		width:      80,
	}
}

// Bind attaches the controller after both sides exist.
func (m *Model) Bind(ctrl *controller.Controller) {
	m.ctrl = ctrl
}

// Confirmer exposes the modal confirmer for controller wiring.
func (m *Model) Confirmer() controller.Confirmer {
	return &m.confirm
}

// Notify implements controller.Notifier.
func (m *Model) Notify(kind controller.NoticeKind, message string) {
	m.notice = message
	m.noticeKind = kind
	m.noticeSeq++
}

// Render implements controller.Renderer.
func (m *Model) Render(view []*task.Task, st stats.Stats, editing controller.EditState) {
	m.view = view
	m.stats = st
	m.editing = editing
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (*task.Task, bool) {
	if len(m.view) == 0 {
		return nil, false
	}
	return m.view[m.cursor], true
}

// dispatch runs a controller action that may ask for confirmation. If it
// did, the action is staged and the modal opens.
func (m *Model) dispatch(action func()) {
	m.confirm.reset()
	action()
	if m.confirm.asked {
		m.pendingAction = action
		m.mode = modeConfirm
	}
}

func (m *Model) Init() tea.Cmd {
	m.ctrl.Refresh()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
		return m, nil

	case noticeExpiredMsg:
		// A newer notice may have replaced the one this tick belongs to.
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	var cmd tea.Cmd
	switch m.mode {
	case modeConfirm:
		m.updateConfirmMode(key)
	case modeAdd:
		cmd = m.updateAddMode(key, msg)
	case modeEdit:
		cmd = m.updateEditMode(key, msg)
	default:
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		cmd = m.updateListMode(key)
	}

	return m, tea.Batch(cmd, m.noticeTick())
}

// noticeTick schedules expiry for a freshly set notice.
func (m *Model) noticeTick() tea.Cmd {
	if m.notice == "" || m.tickedSeq == m.noticeSeq {
		return nil
	}
	m.tickedSeq = m.noticeSeq
	seq := m.noticeSeq
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) updateListMode(key string) tea.Cmd {
	switch key {
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
		return textinput.Blink

	case "j", "down":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "enter":
		if tsk, ok := m.selected(); ok {
			m.ctrl.ToggleTask(m.ctx, tsk.ID)
		}

	case "d":
		if tsk, ok := m.selected(); ok {
			id := tsk.ID
			m.dispatch(func() { m.ctrl.DeleteTask(m.ctx, id) })
		}

	case "e":
		if !m.inlineEdit {
			break
		}
		if tsk, ok := m.selected(); ok {
			if text, started := m.ctrl.StartEdit(tsk.ID); started {
				m.mode = modeEdit
				m.input.SetValue(text)
				m.input.CursorEnd()
				m.input.Focus()
				return textinput.Blink
			}
		}

	case "f", "tab":
		m.ctrl.CycleFilter()

	case "1":
		m.ctrl.SelectFilter(filter.SelectionAll)
	case "2":
		m.ctrl.SelectFilter(filter.SelectionPending)
	case "3":
		m.ctrl.SelectFilter(filter.SelectionCompleted)

	case "C":
		m.dispatch(func() { m.ctrl.CompleteAllTasks(m.ctx) })
	case "R":
		m.dispatch(func() { m.ctrl.ResetAllTasks(m.ctx) })
	case "X":
		m.dispatch(func() { m.ctrl.ClearAll(m.ctx) })
	}
	return nil
}

func (m *Model) updateAddMode(key string, msg tea.KeyMsg) tea.Cmd {
	switch key {
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		return nil

	case "enter":
		text := m.input.Value()
		m.ctrl.AddTask(m.ctx, text)
		if strings.TrimSpace(text) != "" {
			m.mode = modeList
			m.input.SetValue("")
			m.input.Blur()
			m.cursor = 0
		}
		return nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

func (m *Model) updateEditMode(key string, msg tea.KeyMsg) tea.Cmd {
	switch key {
	case "esc":
		m.ctrl.CancelEdit()
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		return nil

	case "enter":
		m.ctrl.SubmitEdit(m.ctx, m.input.Value())
		if !m.ctrl.Editing().Active {
			m.mode = modeList
			m.input.SetValue("")
			m.input.Blur()
		}
		return nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

func (m *Model) updateConfirmMode(key string) {
	switch key {
	case "y", "Y":
		action := m.pendingAction
		m.pendingAction = nil
		m.mode = modeList
		m.confirm.reset()
		m.confirm.approve = true
		action()
		m.confirm.approve = false

	case "n", "N", "esc":
		m.pendingAction = nil
		m.mode = modeList
		m.confirm.reset()
	}
}
