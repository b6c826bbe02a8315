package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mkarner/cadence/internal/cli"
	"github.com/mkarner/cadence/internal/habit"
	"github.com/mkarner/cadence/internal/storage"
	"github.com/mkarner/cadence/internal/tui/components/habitlist"
)

// SessionState represents the current view of the TUI application
type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateDetail
	StateConfirmDelete
)

type HabitFormModel struct {
	Name   string
	Period string
}

type Model struct {
	ctx           *cli.Context
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	detail        *habit.Habit
	habitToDelete string
	statusMsg     string
	formError     string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider) Model {
	ctx := &cli.Context{Store: store}

	habits, err := ctx.LoadAllHabits(time.Now().UTC())
	if err != nil {
		habits = nil
	}

	m := Model{
		ctx:       ctx,
		state:     StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(habits, 0, 0),
	}
	if err != nil {
		m.statusMsg = "Failed to load habits: " + err.Error()
	}

	return m
}

// refreshHabits rederives every habit at the current instant and updates
// the list.
func (m *Model) refreshHabits() {
	habits, err := m.ctx.LoadAllHabits(time.Now().UTC())
	if err != nil {
		m.statusMsg = "Failed to load habits: " + err.Error()
		return
	}
	m.habitList.SetHabits(habits)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
