package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/evanmort/slate/internal/calendar"
	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"SUBJECT", "TITLE"},
		[][]string{
			{"Maths", "Problem set"},
			{"Art", "Portfolio review"},
		},
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4, "header, separator, two rows")

	// All rows start their second column at the same offset.
	assert.Contains(t, lines[2], "Maths")
	assert.Contains(t, lines[3], "Art")
	assert.Equal(t, strings.Index(stripped(lines[2]), "Problem"), strings.Index(stripped(lines[3]), "Portfolio"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderMonthGrid_ShowsAllWeeks(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local)
	g := calendar.MonthGrid(now, []domain.Task{
		{ID: "1", Subject: "Maths", Title: "Exam", Deadline: time.Date(2026, 6, 20, 0, 0, 0, 0, time.Local)},
	}, map[string]string{"Maths": "#fabd2f"}, now)

	out := RenderMonthGrid(g, 80)

	assert.Contains(t, stripped(out), "June 2026")
	assert.Contains(t, stripped(out), "Sun")
	assert.Contains(t, stripped(out), "Exam")

	// First of June 2026 is a Monday; the leading Sunday is May 31.
	assert.Contains(t, stripped(out), "31")
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "", Banner(reminder.Summary{}))
	assert.Contains(t, stripped(Banner(reminder.Summary{Overdue: 2})), "2 assessments overdue")
	assert.Contains(t, stripped(Banner(reminder.Summary{Urgent: 1})), "1 assessment due within 3 days")
}

// stripped removes ANSI styling so tests can assert on content.
func stripped(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
