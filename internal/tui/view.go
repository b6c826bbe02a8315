package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarner/cadence/internal/habit"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateList:
		content = docStyle.Render(m.habitList.View())
	case StateAddHabit:
		content = m.viewAddHabit()
	case StateDetail:
		content = m.viewDetail()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var status string
	if m.statusMsg != "" && m.state == StateList {
		status = statusStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("cadence"),
		status,
		content,
		m.help.View(m),
	)
}

func (m Model) viewAddHabit() string {
	if m.formError != "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			dangerStyle.Render(m.formError),
			m.form.View(),
		)
	}
	return m.form.View()
}

func (m Model) viewDetail() string {
	h := m.detail
	if h == nil {
		return ""
	}

	stateLine := string(h.State)
	switch h.State {
	case habit.StateReady:
		stateLine = readyStyle.Render("ready - due now")
	case habit.StateUnready:
		stateLine = "done for this period"
	case habit.StateBroken:
		stateLine = brokenStyle.Render("broken - restart to resume")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", h.Name, h.Period)
	fmt.Fprintf(&b, "State:    %s\n", stateLine)
	fmt.Fprintf(&b, "Started:  %s\n", h.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Streak:   %d (longest %d)\n", h.Streak, h.LongestStreak)
	fmt.Fprintf(&b, "Failures: %d\n", h.FailCount)

	if n := len(h.Log); n > 0 {
		fmt.Fprintf(&b, "\nRecent events:\n")
		start := n - 10
		if start < 0 {
			start = 0
		}
		for _, e := range h.Log[start:] {
			fmt.Fprintf(&b, "  %s  %s\n", e.Time.Format("2006-01-02 15:04"), e.Kind)
		}
	}

	b.WriteString("\n[esc] back")
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q and its whole history?", m.habitToDelete)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
