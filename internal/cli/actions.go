package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanmort/slate/internal/cli/formatter"
)

// execConfirm pushes a confirmation wizard and runs fn if confirmed.
// Shared structure for deleting tasks and profiles.
func execConfirm(state *SharedState, prompt string, fn func() (string, error)) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	return pushView(newWizardView(state, "Confirm", form, func() tea.Cmd {
		if !confirmed {
			return func() tea.Msg { return wizardCompleteNotice(formatter.Dim("Cancelled.")) }
		}
		return func() tea.Msg {
			msg, err := fn()
			if err != nil {
				return wizardCompleteError(err)
			}
			return wizardCompleteNotice(msg)
		}
	}))
}

// execDeleteTask confirms and deletes a single assessment.
func execDeleteTask(state *SharedState, id, title string) tea.Cmd {
	return execConfirm(state, fmt.Sprintf("Delete %q?", title), func() (string, error) {
		if err := state.App.Tasks.Remove(id); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s Deleted: %s",
			formatter.StyleGreen.Render("✔"), formatter.Bold(title)), nil
	})
}

// execDeleteProfile confirms and deletes the active profile with all its tasks.
func execDeleteProfile(state *SharedState, name string) tea.Cmd {
	prompt := fmt.Sprintf("Delete profile %q and all its assessments?", name)
	return execConfirm(state, prompt, func() (string, error) {
		if err := state.App.Profiles.Delete(); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s Deleted profile %s, now on %s",
			formatter.StyleGreen.Render("✔"),
			formatter.Bold(name),
			formatter.Bold(state.App.Profiles.Active())), nil
	})
}

// startProfileNameWizard opens a single-field form and passes the trimmed
// name to apply. Used for both create and rename.
func startProfileNameWizard(state *SharedState, title, initial string, apply func(name string) error) tea.Cmd {
	name := initial
	form := wizardTextInput("Profile name", "e.g. Semester 2", &name, validateRequiredField("name"))
	return pushView(newWizardView(state, title, form, func() tea.Cmd {
		return func() tea.Msg {
			trimmed := strings.TrimSpace(name)
			if err := apply(trimmed); err != nil {
				return wizardCompleteError(err)
			}
			return wizardCompleteNotice(fmt.Sprintf("%s %s: %s",
				formatter.StyleGreen.Render("✔"), title, formatter.Bold(trimmed)))
		}
	}))
}

// execExport writes a dated backup next to the current working directory.
func execExport(state *SharedState) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		path, err := app.Backups.Export(".")
		if err != nil {
			return noticeMsg{text: formatter.StyleRed.Render("✗ " + err.Error())}
		}
		return noticeMsg{text: fmt.Sprintf("%s Exported to %s",
			formatter.StyleGreen.Render("✔"), formatter.Bold(path))}
	}
}

// startImportWizard asks for a backup file path and merges it in.
func startImportWizard(state *SharedState) tea.Cmd {
	var path string
	form := wizardTextInput("Backup file", "path to a .json backup", &path, validateRequiredField("path"))
	return pushView(newWizardView(state, "Import", form, func() tea.Cmd {
		return func() tea.Msg {
			f, err := os.Open(strings.TrimSpace(path))
			if err != nil {
				return wizardCompleteError(fmt.Errorf("opening backup: %w", err))
			}
			defer f.Close()

			res, err := state.App.Backups.Import(f)
			if err != nil {
				return wizardCompleteError(err)
			}
			return wizardCompleteNotice(fmt.Sprintf("%s Imported %d profiles (%d assessments)",
				formatter.StyleGreen.Render("✔"), res.Profiles, res.Tasks))
		}
	}))
}
