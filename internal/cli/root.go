package cli

import (
	"github.com/evanmort/slate/internal/config"
	"github.com/evanmort/slate/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands
// and the TUI.
type App struct {
	Tasks    service.TaskService
	Profiles service.ProfileService
	Backups  service.BackupService

	Config    config.Config
	StorePath string

	// IsInteractive reports whether stdout is a terminal. The bare
	// "slate" command only launches the TUI when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "slate" command and registers all
// subcommands against the provided App. Running it with no arguments
// opens the interactive tracker when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "slate",
		Short: "Track assessment deadlines across subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newTaskCmd(app),
		newProfileCmd(app),
		newCalendarCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
