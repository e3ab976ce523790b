package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanmort/slate/internal/cli/formatter"
)

// profileListLoadedMsg carries the profile names and which one is active.
type profileListLoadedMsg struct {
	names  []string
	active string
}

// profileListView lists profiles and lets the user switch, create,
// rename, and delete them.
type profileListView struct {
	state  *SharedState
	names  []string
	active string
	cursor int
}

func newProfileListView(state *SharedState) *profileListView {
	return &profileListView{state: state}
}

func (v *profileListView) ID() ViewID    { return ViewProfileList }
func (v *profileListView) Title() string { return "Profiles" }

func (v *profileListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename active")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete active")),
	}
}

func (v *profileListView) Init() tea.Cmd {
	return v.load()
}

func (v *profileListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return profileListLoadedMsg{names: app.Profiles.Names(), active: app.Profiles.Active()}
	}
}

func (v *profileListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileListLoadedMsg:
		v.names = msg.names
		v.active = msg.active
		if v.cursor >= len(v.names) {
			v.cursor = len(v.names) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.names)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.names) {
				return v, v.switchTo(v.names[v.cursor])
			}
		case "n":
			return v, startProfileNameWizard(v.state, "New Profile", "", func(name string) error {
				return v.state.App.Profiles.Create(name)
			})
		case "r":
			return v, startProfileNameWizard(v.state, "Rename Profile", v.active, func(name string) error {
				return v.state.App.Profiles.Rename(name)
			})
		case "x":
			return v, execDeleteProfile(v.state, v.active)
		}
	}
	return v, nil
}

func (v *profileListView) switchTo(name string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Profiles.SwitchTo(name); err != nil {
			return noticeMsg{text: formatter.StyleRed.Render("✗ " + err.Error())}
		}
		return refreshViewMsg{}
	}
}

func (v *profileListView) View() string {
	var b strings.Builder
	for i, name := range v.names {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("❯ ")
		}
		label := name
		if name == v.active {
			label = formatter.StyleGreen.Render(name + " (active)")
		}
		b.WriteString(fmt.Sprintf("%s%s", marker, label))
		if i < len(v.names)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
