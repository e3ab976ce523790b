package domain

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used everywhere a date crosses a
// boundary: the store file, backup files, CLI flags, and form input.
const DateFormat = "2006-01-02"

type Task struct {
	ID        string
	Subject   string
	Title     string
	Deadline  time.Time // date precision; time-of-day is always midnight
	Weighting *int      // percent of final grade, nil when not set
	Notes     string
	Completed bool
}

// ValidateWeighting checks that a weighting, when present, is a percentage.
func ValidateWeighting(w *int) error {
	if w == nil {
		return nil
	}
	if *w < 0 || *w > 100 {
		return fmt.Errorf("weighting %d is out of range (0-100)", *w)
	}
	return nil
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the whole-day distance from now's calendar day to the
// task's deadline. Negative means the deadline has passed.
func (t *Task) DaysUntil(now time.Time) int {
	return int(Midnight(t.Deadline).Sub(Midnight(now)).Hours() / 24)
}

// SameDay reports whether the task's deadline falls on the given calendar day.
func (t *Task) SameDay(day time.Time) bool {
	y1, m1, d1 := t.Deadline.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
