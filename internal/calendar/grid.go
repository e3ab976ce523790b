// Package calendar builds the 6-week month grid that the calendar view and
// the calendar command render. Grid generation is pure; the month cursor
// itself is UI session state and lives with the caller.
package calendar

import (
	"time"

	"github.com/evanmort/slate/internal/domain"
)

const (
	DaysPerWeek = 7
	WeeksShown  = 6
	GridCells   = DaysPerWeek * WeeksShown

	// FallbackColor marks tasks whose subject has no assigned color.
	FallbackColor = "#928374"
)

// Marker is one task pinned to a grid cell.
type Marker struct {
	TaskID  string
	Title   string
	Color   string
	Tooltip string // "subject: title"
}

// Cell is one day square of the grid.
type Cell struct {
	Date    time.Time
	InMonth bool // false for the de-emphasized leading/trailing days
	Today   bool
	Markers []Marker
}

// Grid is a full month view: always 42 cells, first cell always a Sunday.
type Grid struct {
	Year  int
	Month time.Month
	Cells [GridCells]Cell
}

// MonthGrid lays out the month containing cursor. The grid starts at the
// Sunday on or before the 1st, so leading and trailing days of adjacent
// months always pad it to exactly six full weeks. Completed tasks never
// produce markers.
func MonthGrid(cursor time.Time, tasks []domain.Task, colors map[string]string, now time.Time) Grid {
	year, month, _ := cursor.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, cursor.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := domain.Midnight(now)

	g := Grid{Year: year, Month: month}
	for i := range g.Cells {
		date := start.AddDate(0, 0, i)
		cell := Cell{
			Date:    date,
			InMonth: date.Month() == month,
			Today:   date.Equal(today),
		}
		for t := range tasks {
			task := &tasks[t]
			if task.Completed || task.Deadline.IsZero() || !task.SameDay(date) {
				continue
			}
			cell.Markers = append(cell.Markers, Marker{
				TaskID:  task.ID,
				Title:   task.Title,
				Color:   subjectColor(colors, task.Subject),
				Tooltip: task.Subject + ": " + task.Title,
			})
		}
		g.Cells[i] = cell
	}
	return g
}

// PrevMonth and NextMonth shift a cursor by one calendar month, pinned to
// the 1st so a day-31 cursor cannot skip short months.

func PrevMonth(cursor time.Time) time.Time {
	y, m, _ := cursor.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, cursor.Location()).AddDate(0, -1, 0)
}

func NextMonth(cursor time.Time) time.Time {
	y, m, _ := cursor.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, cursor.Location()).AddDate(0, 1, 0)
}

func subjectColor(colors map[string]string, subject string) string {
	if c, ok := colors[subject]; ok && c != "" {
		return c
	}
	return FallbackColor
}
