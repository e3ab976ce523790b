package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evanmort/slate/internal/calendar"
)

const (
	minCellWidth = 9
	maxCellWidth = 18
	maxMarkers   = 3 // marker lines shown per cell before "+N"
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderMonthGrid renders a 6-week month grid into a fixed-width block.
// Out-of-month days are dimmed, today is highlighted, and task markers are
// colored by subject.
func RenderMonthGrid(g calendar.Grid, width int) string {
	cellW := width / calendar.DaysPerWeek
	if cellW < minCellWidth {
		cellW = minCellWidth
	}
	if cellW > maxCellWidth {
		cellW = maxCellWidth
	}

	var b strings.Builder

	title := fmt.Sprintf("%s %d", g.Month, g.Year)
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n\n")

	for _, name := range weekdayNames {
		b.WriteString(padCell(StyleBold.Render(name), cellW))
	}
	b.WriteByte('\n')
	b.WriteString(StyleDim.Render(strings.Repeat("─", cellW*calendar.DaysPerWeek)))
	b.WriteByte('\n')

	for week := 0; week < calendar.WeeksShown; week++ {
		cells := g.Cells[week*calendar.DaysPerWeek : (week+1)*calendar.DaysPerWeek]
		b.WriteString(renderWeek(cells, cellW))
		if week < calendar.WeeksShown-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// renderWeek renders seven cells side by side as a multi-line block: one
// line for day numbers, then one line per marker slot used in this week.
func renderWeek(cells []calendar.Cell, cellW int) string {
	depth := 0
	for _, c := range cells {
		n := len(c.Markers)
		if n > maxMarkers {
			n = maxMarkers + 1 // the "+N" line
		}
		if n > depth {
			depth = n
		}
	}

	var b strings.Builder
	for _, c := range cells {
		b.WriteString(padCell(renderDayNumber(c), cellW))
	}
	for line := 0; line < depth; line++ {
		b.WriteByte('\n')
		for _, c := range cells {
			b.WriteString(padCell(renderMarkerLine(c, line, cellW), cellW))
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func renderDayNumber(c calendar.Cell) string {
	day := fmt.Sprintf("%2d", c.Date.Day())
	switch {
	case c.Today:
		return lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Reverse(true).Render(day)
	case !c.InMonth:
		return StyleDim.Render(day)
	default:
		return StyleFg.Render(day)
	}
}

func renderMarkerLine(c calendar.Cell, line, cellW int) string {
	if line < maxMarkers && line < len(c.Markers) {
		m := c.Markers[line]
		label := truncate(m.Title, cellW-3)
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).Render("●")
		return dot + " " + StyleFg.Render(label)
	}
	if line == maxMarkers && len(c.Markers) > maxMarkers {
		return StyleDim.Render(fmt.Sprintf("+%d more", len(c.Markers)-maxMarkers))
	}
	return ""
}

func truncate(s string, n int) string {
	if n < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func padCell(styled string, w int) string {
	pad := w - lipgloss.Width(styled)
	if pad < 0 {
		pad = 0
	}
	return styled + strings.Repeat(" ", pad)
}
