package models

import "time"

// HabitRecord is the persisted identity of a habit: name (unique, acts as
// the primary key in storage), periodicity, and start date. Derived state
// is never stored; it is recomputed from the event log on load.
type HabitRecord struct {
	Name      string    `json:"name"`
	Period    Period    `json:"period"`
	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
}
