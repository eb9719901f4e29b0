package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/hwcheck/internal/storage"
	"github.com/sandeepkv93/hwcheck/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	store := storage.NewStateStore(cfg.StatePath, cfg.BackupPath)

	var archive storage.Repository
	if cfg.ArchiveDBPath != "" {
		repo, err := storage.OpenSQLite(cfg.ArchiveDBPath)
		if err != nil {
			// The archive is optional; the tracker still works without it.
			fmt.Fprintf(os.Stderr, "warning: snapshot archive unavailable: %v\n", err)
		} else {
			defer repo.Close()
			archive = repo
		}
	}

	m := update.NewModelWithConfig(store, archive, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
