package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mkarner/cadence/internal/habit"
	"github.com/mkarner/cadence/internal/models"
	"github.com/mkarner/cadence/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
	}

	// Handle Add Habit form
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateList
			m.formError = ""
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			now := time.Now().UTC()
			period, err := models.ParsePeriod(m.habitForm.Period)
			if err == nil {
				_, err = m.ctx.NewHabit(m.habitForm.Name, period, now, now)
			}
			if err != nil {
				// Stay on the form so the user can correct the input
				m.formError = err.Error()
				m.form = m.newHabitForm()
				return m, m.form.Init()
			}
			m.formError = ""
			m.statusMsg = fmt.Sprintf("Added habit %q", m.habitForm.Name)
			m.refreshHabits()
			m.state = StateList
		case huh.StateAborted:
			m.formError = ""
			m.state = StateList
		}
		return m, tea.Batch(cmds...)
	}

	// Handle delete confirmation
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.ctx.Store.DeleteHabit(m.habitToDelete); err != nil {
					m.statusMsg = "Delete failed: " + err.Error()
				} else {
					m.statusMsg = fmt.Sprintf("Deleted habit %q", m.habitToDelete)
					m.refreshHabits()
				}
				m.habitToDelete = ""
				m.state = StateList
			case "n", "N", "esc":
				m.habitToDelete = ""
				m.state = StateList
			}
		}
		return m, nil
	}

	// Handle detail view
	if m.state == StateDetail {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc", "q", "enter":
				m.detail = nil
				m.state = StateList
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Period: string(models.PeriodDaily)}
		m.form = m.newHabitForm()
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.CheckOffMsg:
		now := time.Now().UTC()
		h, err := m.ctx.LoadHabit(msg.Name, now)
		if err == nil && h.State == habit.StateReady {
			h.CheckOff(now)
			err = m.ctx.SaveHabit(h)
		}
		if err != nil {
			m.statusMsg = "Check-off failed: " + err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Checked off %q", msg.Name)
		}
		m.refreshHabits()
		return m, nil

	case habitlist.RestartMsg:
		now := time.Now().UTC()
		h, err := m.ctx.LoadHabit(msg.Name, now)
		if err == nil {
			h.Restart(now)
			err = m.ctx.SaveHabit(h)
		}
		if err != nil {
			m.statusMsg = "Restart failed: " + err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Restarted %q", msg.Name)
		}
		m.refreshHabits()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDelete = msg.Name
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.ViewHabitMsg:
		h, err := m.ctx.LoadHabit(msg.Name, time.Now().UTC())
		if err != nil {
			m.statusMsg = "Failed to load habit: " + err.Error()
			return m, nil
		}
		m.detail = h
		m.state = StateDetail
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) newHabitForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&m.habitForm.Name),
			huh.NewSelect[string]().
				Title("Period").
				Options(
					huh.NewOption("Daily", string(models.PeriodDaily)),
					huh.NewOption("Weekly", string(models.PeriodWeekly)),
					huh.NewOption("Monthly", string(models.PeriodMonthly)),
				).
				Value(&m.habitForm.Period),
		),
	)
}
