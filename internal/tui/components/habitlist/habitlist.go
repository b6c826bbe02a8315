package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarner/cadence/internal/habit"
	"github.com/mkarner/cadence/internal/models"
)

type AddHabitMsg struct{}

type CheckOffMsg struct {
	Name string
}

type RestartMsg struct {
	Name string
}

type DeleteHabitMsg struct {
	Name string
}

type ViewHabitMsg struct {
	Name string
}

type Item struct {
	Habit *habit.Habit
}

func (i Item) Title() string {
	var badge string
	switch i.Habit.State {
	case habit.StateReady:
		badge = "●"
	case habit.StateUnready:
		badge = "✓"
	case habit.StateBroken:
		badge = "✗"
	}
	return fmt.Sprintf("%s %s", badge, i.Habit.Name)
}

func (i Item) Description() string {
	switch i.Habit.State {
	case habit.StateReady:
		return fmt.Sprintf("%s · streak %d · due now", i.Habit.Period, i.Habit.Streak)
	case habit.StateUnready:
		return fmt.Sprintf("%s · streak %d · done for this period", i.Habit.Period, i.Habit.Streak)
	case habit.StateBroken:
		return fmt.Sprintf("%s · broken · %d failures · press 'r' to restart", i.Habit.Period, i.Habit.FailCount)
	default:
		return string(i.Habit.Period)
	}
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	CheckOff key.Binding
	Restart  key.Binding
	Delete   key.Binding
	Detail   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		CheckOff: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check off"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []*habit.Habit, width, height int) Model {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.CheckOff, keys.Restart, keys.Delete, keys.Detail}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.CheckOff, keys.Restart, keys.Delete, keys.Detail}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetHabits(habits []*habit.Habit) {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	m.list.SetItems(items)
}

// Selected returns the currently highlighted habit, or nil.
func (m Model) Selected() *habit.Habit {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Habit
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.CheckOff):
			if h := m.Selected(); h != nil && h.State == habit.StateReady {
				name := h.Name
				return m, func() tea.Msg { return CheckOffMsg{Name: name} }
			}
		case key.Matches(msg, m.keys.Restart):
			if h := m.Selected(); h != nil && !lastEventIsRestart(h) {
				name := h.Name
				return m, func() tea.Msg { return RestartMsg{Name: name} }
			}
		case key.Matches(msg, m.keys.Delete):
			if h := m.Selected(); h != nil {
				name := h.Name
				return m, func() tea.Msg { return DeleteHabitMsg{Name: name} }
			}
		case key.Matches(msg, m.keys.Detail):
			if h := m.Selected(); h != nil {
				name := h.Name
				return m, func() tea.Msg { return ViewHabitMsg{Name: name} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func lastEventIsRestart(h *habit.Habit) bool {
	n := len(h.Log)
	return n > 0 && h.Log[n-1].Kind == models.EventRestart
}
