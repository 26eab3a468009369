package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/controller"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/filter"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/models/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			MarginBottom(1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("243"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2)
)

var categoryColors = map[task.Category]lipgloss.Color{
	task.CategoryFire:     lipgloss.Color("203"),
	task.CategoryWater:    lipgloss.Color("39"),
	task.CategoryGrass:    lipgloss.Color("76"),
	task.CategoryElectric: lipgloss.Color("220"),
	task.CategoryPsychic:  lipgloss.Color("177"),
	task.CategoryNormal:   lipgloss.Color("250"),
}

func categoryBadge(c task.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = lipgloss.Color("250")
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + string(c) + "]")
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Gotta Do 'Em All"))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf(
		"%d caught, %d to go (%d%% complete)",
		m.stats.Completed, m.stats.Pending, m.stats.CompletionRate)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeConfirm:
		b.WriteString(m.renderTasks())
		b.WriteString("\n")
		b.WriteString(modalStyle.Render(m.confirm.prompt + "\n\n[y]es  [n]o"))
	case modeAdd:
		b.WriteString("New task: " + m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.renderTasks())
	case modeEdit:
		b.WriteString("Edit task: " + m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.renderTasks())
	default:
		b.WriteString(m.renderTasks())
	}

	if m.notice != "" {
		b.WriteString("\n")
		switch m.noticeKind {
		case controller.NoticeSuccess:
			b.WriteString(successStyle.Render(m.notice))
		case controller.NoticeError:
			b.WriteString(errorStyle.Render(m.notice))
		default:
			b.WriteString(infoStyle.Render(m.notice))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := []struct {
		sel   filter.Selection
		label string
	}{
		{filter.SelectionAll, "1 All"},
		{filter.SelectionPending, "2 Pending"},
		{filter.SelectionCompleted, "3 Completed"},
	}

	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		if m.ctrl != nil && m.ctrl.Selection() == tab.sel {
			parts[i] = activeTabStyle.Render(tab.label)
		} else {
			parts[i] = tabStyle.Render(tab.label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderTasks() string {
	if len(m.view) == 0 {
		return statsStyle.Render("No tasks here. Press 'a' to catch one.")
	}

	var b strings.Builder
	for i, tsk := range m.view {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		check := "[ ]"
		if tsk.Completed {
			check = "[x]"
		}

		text := tsk.Text
		if tsk.Completed {
			text = doneStyle.Render(text)
		}
		if m.editing.Active && m.editing.TaskID == tsk.ID {
			text += cursorStyle.Render(" (editing)")
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, check, categoryBadge(tsk.Category), text))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeAdd, modeEdit:
		return "enter save · esc cancel"
	case modeConfirm:
		return "y confirm · n cancel"
	}
	help := "a add · space toggle · d delete · f filter · C complete all · R reset all · X clear · q quit"
	if m.inlineEdit {
		help = strings.Replace(help, "d delete", "d delete · e edit", 1)
	}
	return help
}
