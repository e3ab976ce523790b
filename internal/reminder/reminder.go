// Package reminder scans incomplete tasks for deadlines that have passed or
// are about to, driving the banner shown at the top of every view.
package reminder

import (
	"time"

	"github.com/evanmort/slate/internal/domain"
)

// UrgentWindowDays is the inclusive number of days ahead that counts as
// urgent. A task due today is urgent; a task due in four days is not yet.
const UrgentWindowDays = 3

// Level is the banner severity. Overdue outranks urgent.
type Level int

const (
	LevelNone Level = iota
	LevelUrgent
	LevelOverdue
)

// Summary is the result of one evaluation pass.
type Summary struct {
	Overdue int
	Urgent  int
}

// Evaluate counts overdue and urgent incomplete tasks relative to now.
// Days are whole calendar days from midnight-normalized now, so a task due
// later today still counts as urgent, not overdue.
func Evaluate(tasks []domain.Task, now time.Time) Summary {
	var s Summary
	for i := range tasks {
		t := &tasks[i]
		if t.Completed || t.Deadline.IsZero() {
			continue
		}
		days := t.DaysUntil(now)
		switch {
		case days < 0:
			s.Overdue++
		case days <= UrgentWindowDays:
			s.Urgent++
		}
	}
	return s
}

// Level maps the counts onto banner severity: any overdue task wins, any
// urgent task comes next, otherwise the banner is hidden.
func (s Summary) Level() Level {
	switch {
	case s.Overdue > 0:
		return LevelOverdue
	case s.Urgent > 0:
		return LevelUrgent
	default:
		return LevelNone
	}
}
