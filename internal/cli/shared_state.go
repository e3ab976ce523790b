package cli

import (
	"time"

	"github.com/evanmort/slate/internal/query"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// List filters survive view switches so coming back from the
	// calendar restores the same slice of tasks.
	Query query.Query

	// Month the calendar is looking at.
	CalendarCursor time.Time

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for the header (3 lines: title, banner, separator)
// and status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
