package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mkarner/cadence/internal/models"
	"github.com/mkarner/cadence/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "cadence.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(name string, period models.Period) models.HabitRecord {
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	return models.HabitRecord{
		Name:      name,
		Period:    period,
		StartDate: start,
		CreatedAt: start,
	}
}

func TestLoadWithoutInit(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Fatal("Load() on a missing database should fail")
	}
}

func TestAddAndGetHabit(t *testing.T) {
	s := newTestStore(t)

	want := testRecord("Take a walk", models.PeriodDaily)
	if err := s.AddHabit(want); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	got, err := s.GetHabit("Take a walk")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if got.Name != want.Name || got.Period != want.Period {
		t.Errorf("GetHabit() = %+v, want %+v", got, want)
	}
	if !got.StartDate.Equal(want.StartDate) {
		t.Errorf("StartDate = %v, want %v", got.StartDate, want.StartDate)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestGetHabitNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetHabit("nope")
	if !errors.Is(err, storage.ErrHabitNotFound) {
		t.Errorf("GetHabit() error = %v, want ErrHabitNotFound", err)
	}
}

func TestAddHabitUpsert(t *testing.T) {
	s := newTestStore(t)

	rec := testRecord("Run", models.PeriodWeekly)
	if err := s.AddHabit(rec); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	rec.Period = models.PeriodDaily
	if err := s.AddHabit(rec); err != nil {
		t.Fatalf("AddHabit() upsert failed: %v", err)
	}

	got, err := s.GetHabit("Run")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if got.Period != models.PeriodDaily {
		t.Errorf("Period = %q, want %q after upsert", got.Period, models.PeriodDaily)
	}
}

func TestGetAllHabitsOrdering(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		rec := models.HabitRecord{
			Name:      name,
			Period:    models.PeriodDaily,
			StartDate: base,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := s.AddHabit(rec); err != nil {
			t.Fatalf("AddHabit(%s) failed: %v", name, err)
		}
	}

	habits, err := s.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() failed: %v", err)
	}
	if len(habits) != 3 {
		t.Fatalf("got %d habits, want 3", len(habits))
	}
	for i, name := range []string{"first", "second", "third"} {
		if habits[i].Name != name {
			t.Errorf("habits[%d].Name = %q, want %q", i, habits[i].Name, name)
		}
	}
}

func TestDeleteHabit(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddHabit(testRecord("Read", models.PeriodDaily)); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}
	if err := s.DeleteHabit("Read"); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}
	if _, err := s.GetHabit("Read"); !errors.Is(err, storage.ErrHabitNotFound) {
		t.Errorf("GetHabit() after delete: error = %v, want ErrHabitNotFound", err)
	}
	if err := s.DeleteHabit("Read"); !errors.Is(err, storage.ErrHabitNotFound) {
		t.Errorf("second DeleteHabit() error = %v, want ErrHabitNotFound", err)
	}
}

func TestDeleteHabitCascadesEvents(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddHabit(testRecord("Meditate", models.PeriodWeekly)); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}
	log := []models.Event{
		{ID: uuid.New().String(), HabitName: "Meditate", Time: time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC), Kind: models.EventSuccess},
	}
	if err := s.SaveLog("Meditate", log); err != nil {
		t.Fatalf("SaveLog() failed: %v", err)
	}

	if err := s.DeleteHabit("Meditate"); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}

	got, err := s.GetLog("Meditate")
	if err != nil {
		t.Fatalf("GetLog() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d events after delete, want 0", len(got))
	}
}

func TestSaveLogRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddHabit(testRecord("Run", models.PeriodWeekly)); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	base := time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC)
	log := []models.Event{
		{ID: uuid.New().String(), HabitName: "Run", Time: base, Kind: models.EventSuccess},
		{ID: uuid.New().String(), HabitName: "Run", Time: base.AddDate(0, 0, 7), Kind: models.EventSuccess},
		{ID: uuid.New().String(), HabitName: "Run", Time: base.AddDate(0, 0, 21), Kind: models.EventFailure},
	}
	if err := s.SaveLog("Run", log); err != nil {
		t.Fatalf("SaveLog() failed: %v", err)
	}

	got, err := s.GetLog("Run")
	if err != nil {
		t.Fatalf("GetLog() failed: %v", err)
	}
	if len(got) != len(log) {
		t.Fatalf("got %d events, want %d", len(got), len(log))
	}
	for i := range log {
		if got[i].ID != log[i].ID {
			t.Errorf("event %d: ID = %q, want %q", i, got[i].ID, log[i].ID)
		}
		if got[i].Kind != log[i].Kind {
			t.Errorf("event %d: Kind = %q, want %q", i, got[i].Kind, log[i].Kind)
		}
		if !got[i].Time.Equal(log[i].Time) {
			t.Errorf("event %d: Time = %v, want %v", i, got[i].Time, log[i].Time)
		}
	}
}

func TestSaveLogPreservesSameTimestampOrder(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddHabit(testRecord("Run", models.PeriodWeekly)); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	// A failure followed by a restart at the same instant must come back
	// in the same order
	at := time.Date(2024, time.June, 23, 8, 0, 0, 0, time.UTC)
	log := []models.Event{
		{ID: uuid.New().String(), HabitName: "Run", Time: at, Kind: models.EventFailure},
		{ID: uuid.New().String(), HabitName: "Run", Time: at, Kind: models.EventRestart},
	}
	if err := s.SaveLog("Run", log); err != nil {
		t.Fatalf("SaveLog() failed: %v", err)
	}

	got, err := s.GetLog("Run")
	if err != nil {
		t.Fatalf("GetLog() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Kind != models.EventFailure || got[1].Kind != models.EventRestart {
		t.Errorf("order = [%s, %s], want [failure, restart]", got[0].Kind, got[1].Kind)
	}
}

func TestSaveLogReplacesExisting(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddHabit(testRecord("Read", models.PeriodDaily)); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	base := time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC)
	first := []models.Event{
		{ID: uuid.New().String(), HabitName: "Read", Time: base, Kind: models.EventSuccess},
		{ID: uuid.New().String(), HabitName: "Read", Time: base.AddDate(0, 0, 1), Kind: models.EventSuccess},
	}
	if err := s.SaveLog("Read", first); err != nil {
		t.Fatalf("SaveLog() failed: %v", err)
	}

	second := append(first, models.Event{
		ID: uuid.New().String(), HabitName: "Read", Time: base.AddDate(0, 0, 2), Kind: models.EventFailure,
	})
	if err := s.SaveLog("Read", second); err != nil {
		t.Fatalf("second SaveLog() failed: %v", err)
	}

	got, err := s.GetLog("Read")
	if err != nil {
		t.Fatalf("GetLog() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d events, want 3", len(got))
	}
}
