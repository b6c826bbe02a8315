package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/models"
	"github.com/mkarner/cadence/internal/storage"
)

func (s *Store) AddHabit(habit models.HabitRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (name, period, start_date, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			period = excluded.period,
			start_date = excluded.start_date`,
		habit.Name, string(habit.Period),
		habit.StartDate.UTC().Format(time.RFC3339),
		habit.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *Store) GetHabit(name string) (models.HabitRecord, error) {
	row := s.db.QueryRow(`
		SELECT name, period, start_date, created_at
		FROM habits WHERE name = ?`, name)

	var h models.HabitRecord
	var period, startDate, createdAt string

	err := row.Scan(&h.Name, &period, &startDate, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitRecord{}, fmt.Errorf("%w: %s", storage.ErrHabitNotFound, name)
		}
		return models.HabitRecord{}, err
	}

	h.Period = models.Period(period)
	h.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return models.HabitRecord{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return h, nil
}

func (s *Store) GetAllHabits() ([]models.HabitRecord, error) {
	rows, err := s.db.Query(`
		SELECT name, period, start_date, created_at
		FROM habits ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.HabitRecord
	for rows.Next() {
		var h models.HabitRecord
		var period, startDate, createdAt string

		if err := rows.Scan(&h.Name, &period, &startDate, &createdAt); err != nil {
			return nil, err
		}

		h.Period = models.Period(period)
		h.StartDate, err = time.Parse(time.RFC3339, startDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_date for habit %s: %w", h.Name, err)
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.Name, err)
		}

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) DeleteHabit(name string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE name = ?`, name)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", storage.ErrHabitNotFound, name)
	}

	return nil
}

func (s *Store) GetLog(habitName string) ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_name, time, kind
		FROM events WHERE habit_name = ?
		ORDER BY time, seq`, habitName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var log []models.Event
	for rows.Next() {
		var e models.Event
		var at, kind string

		if err := rows.Scan(&e.ID, &e.HabitName, &at, &kind); err != nil {
			return nil, err
		}

		e.Time, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time for event %s: %w", e.ID, err)
		}
		e.Kind = models.EventKind(kind)

		log = append(log, e)
	}

	return log, rows.Err()
}

// SaveLog replaces the stored event log for a habit. The slice index is
// persisted as seq so events sharing a timestamp keep their order.
func (s *Store) SaveLog(habitName string, log []models.Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM events WHERE habit_name = ?`, habitName); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (id, habit_name, time, kind, seq)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range log {
		if _, err := stmt.Exec(e.ID, habitName, e.Time.UTC().Format(time.RFC3339), string(e.Kind), i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
