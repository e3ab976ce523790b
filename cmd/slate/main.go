package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanmort/slate/internal/cli"
	"github.com/evanmort/slate/internal/config"
	"github.com/evanmort/slate/internal/service"
	"github.com/evanmort/slate/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := os.Getenv("SLATE_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configDir = filepath.Join(home, ".slate")
	}

	cfg, err := config.LoadOrCreate(filepath.Join(configDir, config.DefaultConfigFileName))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Store path: env var beats config; a relative config path is
	// resolved against the config directory.
	storePath := os.Getenv("SLATE_STORE")
	if storePath == "" {
		storePath = cfg.StorePath
		if !filepath.IsAbs(storePath) {
			storePath = filepath.Join(configDir, storePath)
		}
	}

	store := storage.NewAdapter(storePath)

	app := &cli.App{
		Tasks:     service.NewTaskService(store, cfg.Palette),
		Profiles:  service.NewProfileService(store),
		Backups:   service.NewBackupService(store),
		Config:    cfg,
		StorePath: storePath,
	}

	// Detect interactive terminal for the TUI-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
