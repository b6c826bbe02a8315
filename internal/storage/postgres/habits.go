package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarner/cadence/internal/models"
	"github.com/mkarner/cadence/internal/storage"
)

func (s *Store) AddHabit(habit models.HabitRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (name, period, start_date, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			period = EXCLUDED.period,
			start_date = EXCLUDED.start_date`,
		habit.Name, string(habit.Period), habit.StartDate.UTC(), habit.CreatedAt.UTC())
	return err
}

func (s *Store) GetHabit(name string) (models.HabitRecord, error) {
	row := s.db.QueryRow(`
		SELECT name, period, start_date, created_at
		FROM habits WHERE name = $1`, name)

	var h models.HabitRecord
	var period string

	err := row.Scan(&h.Name, &period, &h.StartDate, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitRecord{}, fmt.Errorf("%w: %s", storage.ErrHabitNotFound, name)
		}
		return models.HabitRecord{}, err
	}

	h.Period = models.Period(period)
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
		var period string

		if err := rows.Scan(&h.Name, &period, &h.StartDate, &h.CreatedAt); err != nil {
			return nil, err
		}

		h.Period = models.Period(period)
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) DeleteHabit(name string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE name = $1`, name)
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
		FROM events WHERE habit_name = $1
		ORDER BY time, seq`, habitName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var log []models.Event
	for rows.Next() {
		var e models.Event
		var kind string

		if err := rows.Scan(&e.ID, &e.HabitName, &e.Time, &kind); err != nil {
			return nil, err
		}

		e.Time = e.Time.UTC()
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

	if _, err := tx.Exec(`DELETE FROM events WHERE habit_name = $1`, habitName); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (id, habit_name, time, kind, seq)
		VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range log {
		if _, err := stmt.Exec(e.ID, habitName, e.Time.UTC(), string(e.Kind), i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
