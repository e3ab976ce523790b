package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanmort/slate/internal/calendar"
	"github.com/evanmort/slate/internal/cli/formatter"
	"github.com/evanmort/slate/internal/domain"
)

// calendarLoadedMsg carries the data the month grid is built from.
type calendarLoadedMsg struct {
	tasks  []domain.Task
	colors map[string]string
}

// calendarView renders the active profile's deadlines on a month grid.
// The cursor month lives in SharedState so it survives leaving the view.
type calendarView struct {
	state  *SharedState
	tasks  []domain.Task
	colors map[string]string
}

func newCalendarView(state *SharedState) *calendarView {
	return &calendarView{state: state}
}

func (v *calendarView) ID() ViewID { return ViewCalendar }

func (v *calendarView) Title() string {
	return v.state.CalendarCursor.Format("January 2006")
}

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.load()
}

func (v *calendarView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return calendarLoadedMsg{tasks: app.Tasks.List(), colors: app.Tasks.SubjectColors()}
	}
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		v.tasks = msg.tasks
		v.colors = msg.colors
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.state.CalendarCursor = calendar.PrevMonth(v.state.CalendarCursor)
		case "right", "l":
			v.state.CalendarCursor = calendar.NextMonth(v.state.CalendarCursor)
		case "t":
			v.state.CalendarCursor = time.Now()
		}
	}
	return v, nil
}

func (v *calendarView) grid() calendar.Grid {
	return calendar.MonthGrid(v.state.CalendarCursor, v.tasks, v.colors, time.Now())
}

func (v *calendarView) View() string {
	return formatter.RenderMonthGrid(v.grid(), v.state.Width)
}
