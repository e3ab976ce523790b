package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/evanmort/slate/internal/domain"
)

// DueLabel returns a short human label for a deadline relative to now:
// "today", "tomorrow", "3d left", "2d over".
func DueLabel(deadline, now time.Time) string {
	days := int(domain.Midnight(deadline).Sub(domain.Midnight(now)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 0:
		return fmt.Sprintf("%dd left", days)
	case days == -1:
		return "1d over"
	default:
		return fmt.Sprintf("%dd over", -days)
	}
}

// DueLabelStyled applies urgency coloring to DueLabel: red when overdue,
// yellow inside the urgent window, default otherwise. Completed tasks are
// always dimmed.
func DueLabelStyled(t *domain.Task, now time.Time) string {
	label := DueLabel(t.Deadline, now)
	if t.Completed {
		return StyleDim.Render(label)
	}
	days := t.DaysUntil(now)
	switch {
	case days < 0:
		return StyleRed.Render(label)
	case days <= 3:
		return StyleYellow.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// Date formats a deadline for table cells; undated tasks render as "--".
func Date(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format(domain.DateFormat)
}

// Weight formats a weighting percentage, "--" when absent.
func Weight(w *int) string {
	if w == nil {
		return "--"
	}
	return strconv.Itoa(*w) + "%"
}

// StatusIcon returns the completion marker for a task row.
func StatusIcon(completed bool) string {
	if completed {
		return StyleGreen.Render("✓")
	}
	return StyleDim.Render("○")
}
