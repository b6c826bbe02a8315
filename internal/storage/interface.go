package storage

import (
	"errors"

	"github.com/mkarner/cadence/internal/models"
)

// ErrHabitNotFound is returned when a lookup names a habit that does not
// exist in the store.
var ErrHabitNotFound = errors.New("habit not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.HabitRecord) error
	GetHabit(name string) (models.HabitRecord, error)
	GetAllHabits() ([]models.HabitRecord, error)
	DeleteHabit(name string) error

	// Event logs
	GetLog(habitName string) ([]models.Event, error)
	SaveLog(habitName string, log []models.Event) error

	// Utils
	GetConfigPath() string
}
