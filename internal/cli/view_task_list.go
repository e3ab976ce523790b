package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanmort/slate/internal/cli/formatter"
	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/query"
)

// taskListLoadedMsg signals that the task list data has been loaded.
type taskListLoadedMsg struct {
	tasks  []domain.Task
	colors map[string]string
}

// taskListView is the home view: the active profile's assessments under
// the current tab, search, subject filter, and sort order.
type taskListView struct {
	state  *SharedState
	tasks  []domain.Task
	colors map[string]string
	cursor int

	searching bool
	search    textinput.Model
}

func newTaskListView(state *SharedState) *taskListView {
	in := textinput.New()
	in.Placeholder = "search"
	in.Prompt = "/"
	in.CharLimit = 80
	return &taskListView{state: state, search: in}
}

func (v *taskListView) ID() ViewID { return ViewTaskList }

func (v *taskListView) Title() string {
	switch v.state.Query.Tab {
	case query.TabCompleted:
		return "Completed"
	case query.TabAll:
		return "All"
	default:
		return "Active"
	}
}

func (v *taskListView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle tab")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter subject")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "sort")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profiles")),
	}
}

func (v *taskListView) capturingInput() bool { return v.searching }

func (v *taskListView) Init() tea.Cmd {
	return v.loadTasks()
}

func (v *taskListView) loadTasks() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return taskListLoadedMsg{tasks: app.Tasks.List(), colors: app.Tasks.SubjectColors()}
	}
}

func (v *taskListView) visible() []domain.Task {
	return query.Visible(v.tasks, v.state.Query)
}

func (v *taskListView) clampCursor(n int) {
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *taskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskListLoadedMsg:
		v.tasks = msg.tasks
		v.colors = msg.colors
		v.clampCursor(len(v.visible()))
		return v, nil

	case refreshViewMsg:
		return v, v.loadTasks()

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.handleKey(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *taskListView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.state.Query.Search = v.search.Value()
		v.search.Blur()
		v.cursor = 0
		return v, nil
	case tea.KeyEsc:
		v.searching = false
		v.search.SetValue("")
		v.state.Query.Search = ""
		v.search.Blur()
		v.cursor = 0
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	// Live filtering: the list narrows as the needle grows.
	v.state.Query.Search = v.search.Value()
	v.clampCursor(len(v.visible()))
	return v, cmd
}

func (v *taskListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visible()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}

	case "tab":
		v.state.Query.Tab = nextTab(v.state.Query.Tab)
		v.cursor = 0

	case "/":
		v.searching = true
		v.search.Focus()
		return v, textinput.Blink

	case "f":
		v.state.Query.Subject = nextSubject(query.DistinctSubjects(v.tasks), v.state.Query.Subject)
		v.cursor = 0

	case "1":
		v.state.Query.Toggle(query.SortBySubject)
	case "2":
		v.state.Query.Toggle(query.SortByTitle)
	case "3":
		v.state.Query.Toggle(query.SortByDeadline)
	case "4":
		v.state.Query.Toggle(query.SortByWeighting)

	case " ", "space":
		if v.cursor < len(visible) {
			return v, v.toggleDone(visible[v.cursor].ID)
		}

	case "a":
		return v, startTaskForm(v.state, nil)

	case "e", "enter":
		if v.cursor < len(visible) {
			t := visible[v.cursor]
			return v, startTaskForm(v.state, &t)
		}

	case "x":
		if v.cursor < len(visible) {
			t := visible[v.cursor]
			return v, execDeleteTask(v.state, t.ID, t.Title)
		}

	case "c":
		return v, pushView(newCalendarView(v.state))

	case "p":
		return v, pushView(newProfileListView(v.state))

	case "E":
		return v, execExport(v.state)

	case "i":
		return v, startImportWizard(v.state)

	case "r":
		return v, v.loadTasks()
	}
	return v, nil
}

func (v *taskListView) toggleDone(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Tasks.ToggleCompletion(id); err != nil {
			return noticeMsg{text: formatter.StyleRed.Render("✗ " + err.Error())}
		}
		return refreshViewMsg{}
	}
}

func (v *taskListView) View() string {
	var b strings.Builder

	b.WriteString(v.renderFilterLine())
	b.WriteString("\n\n")

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("  No assessments. Press 'a' to add one."))
		return b.String()
	}

	now := time.Now()
	for i := range visible {
		t := &visible[i]
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("❯ ")
		}

		line := fmt.Sprintf("%s%s %s %s  %s  %s  %s",
			marker,
			formatter.StatusIcon(t.Completed),
			formatter.SubjectDot(v.colors[t.Subject]),
			formatter.SubjectTag(t.Subject, v.colors[t.Subject]),
			renderTitle(t, i == v.cursor),
			formatter.DueLabelStyled(t, now),
			formatter.Dim(formatter.Weight(t.Weighting)),
		)
		b.WriteString(line)
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *taskListView) renderFilterLine() string {
	parts := []string{
		formatter.Dim("tab:") + " " + string(v.state.Query.Tab),
		formatter.Dim("sort:") + " " + sortLabel(v.state.Query),
	}
	if v.state.Query.Subject != "" {
		parts = append(parts, formatter.Dim("subject:")+" "+v.state.Query.Subject)
	}
	if v.searching {
		parts = append(parts, v.search.View())
	} else if v.state.Query.Search != "" {
		parts = append(parts, formatter.Dim("search:")+" "+v.state.Query.Search)
	}
	return "  " + strings.Join(parts, "   ")
}

func renderTitle(t *domain.Task, selected bool) string {
	if t.Completed {
		return formatter.Dim(t.Title)
	}
	if selected {
		return formatter.Bold(t.Title)
	}
	return t.Title
}

func sortLabel(q query.Query) string {
	dir := "↑"
	if q.SortDesc {
		dir = "↓"
	}
	return string(q.SortCol) + dir
}

func nextTab(t query.Tab) query.Tab {
	switch t {
	case query.TabActive:
		return query.TabCompleted
	case query.TabCompleted:
		return query.TabAll
	default:
		return query.TabActive
	}
}

// nextSubject cycles no-filter -> each subject in order -> no-filter.
func nextSubject(subjects []string, current string) string {
	if len(subjects) == 0 {
		return ""
	}
	if current == "" {
		return subjects[0]
	}
	for i, s := range subjects {
		if s == current {
			if i+1 < len(subjects) {
				return subjects[i+1]
			}
			return ""
		}
	}
	return ""
}
