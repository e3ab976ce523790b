package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanmort/slate/internal/cli/formatter"
	"github.com/evanmort/slate/internal/query"
	"github.com/evanmort/slate/internal/reminder"
	"github.com/evanmort/slate/internal/watch"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, the reminder banner, and a transient notice line.
type appModel struct {
	state     *SharedState
	viewStack []View
	watcher   *watch.Watcher
	quitting  bool

	// Reminder banner, recomputed whenever the store may have changed.
	banner string

	// Transient status line from the last completed action.
	lastNotice string
}

func newAppModel(app *App, w *watch.Watcher) appModel {
	state := &SharedState{
		App:            app,
		Query:          query.Default(),
		CalendarCursor: time.Now(),
	}

	m := appModel{
		state:   state,
		watcher: w,
	}

	// The task list is the home view. A "calendar" default view sits on
	// top of it so esc still lands on the list.
	m.viewStack = []View{newTaskListView(state)}
	if app.Config.DefaultView == "calendar" {
		m.viewStack = append(m.viewStack, newCalendarView(state))
	}
	m.banner = computeBanner(app)

	return m
}

func computeBanner(app *App) string {
	return formatter.Banner(reminder.Evaluate(app.Tasks.List(), time.Now()))
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// waitForChange blocks on the store watcher and converts its ticks
// into messages. Re-armed after every delivery.
func waitForChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.C; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.viewStack {
		cmds = append(cmds, v.Init())
	}
	if c := waitForChange(m.watcher); c != nil {
		cmds = append(cmds, c)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Navigation messages from views
	case pushViewMsg:
		m.lastNotice = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.lastNotice = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views reload
		// data after mutations made in views above them.
		m.banner = computeBanner(m.state.App)
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case storeChangedMsg:
		// Another process touched the store file. Reload everything and
		// keep listening.
		return m, tea.Batch(refreshViews(), waitForChange(m.watcher))

	case noticeMsg:
		m.lastNotice = msg.text
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		// Batch the follow-up command with a refresh so the underlying view reloads.
		return m, tea.Batch(msg.nextCmd, refreshViews())
	}

	// Forward other messages (spinner ticks, blinks) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If the active view owns a text field, forward directly. This
	// bypasses global keybindings so search and forms can receive
	// all characters including 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			m.lastNotice = ""
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("slate")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	profile := formatter.Dim("[") + formatter.StyleGreen.Render(m.state.App.Profiles.Active()) + formatter.Dim("]")
	header := title + breadcrumb + "  " + profile

	// The banner line doubles as the notice line so the layout stays put.
	status := m.banner
	if m.lastNotice != "" {
		status = m.lastNotice
		if m.banner != "" {
			status = m.banner + "  " + m.lastNotice
		}
	}

	sep := formatter.Dim(strings.Repeat("─", headerWidth(m.state.Width)))
	return header + "\n" + status + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	sep := formatter.Dim(strings.Repeat("─", headerWidth(m.state.Width)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func headerWidth(w int) int {
	if w < 20 {
		return 20
	}
	return w
}

// runTUI starts the interactive tracker. The store watcher is best-effort;
// when it cannot be created the TUI simply never auto-refreshes.
func runTUI(app *App) error {
	var w *watch.Watcher
	if app.StorePath != "" {
		if watcher, err := watch.New(app.StorePath); err == nil {
			w = watcher
			defer w.Close()
		}
	}

	p := tea.NewProgram(newAppModel(app, w), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
