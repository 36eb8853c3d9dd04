package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fermata-io/menunav/internal/backend"
	"github.com/fermata-io/menunav/internal/format/table"
	"github.com/fermata-io/menunav/internal/recent"
	"github.com/fermata-io/menunav/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DBPath     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RecentMax  int
	Keymap     ui.KeyOverrides
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store, err := openStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open recent store: %w", err)
	}

	var watcher *backend.Watcher
	if store != nil {
		defer store.Close()
		watcher = backend.NewWatcher(store, cfg.RecentMax, 1500*time.Millisecond)
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Params{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		RecentMax:  cfg.RecentMax,
		Keymap:     cfg.Keymap,
		Store:      store,
		Watcher:    watcher,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseCellMotion(),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// openStore opens the recent-files database, creating parent directories as
// needed. An empty path disables persistence entirely.
func openStore(path string) (*recent.Store, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return recent.Open(path)
}

// ListActions prints the registered action names and titles as an aligned
// table, one action per row.
func ListActions(w io.Writer) error {
	model := ui.NewModel(ui.Params{})
	rows := make([][]string, 0, 64)
	registry := model.Registry()
	for _, name := range registry.Names() {
		rows = append(rows, []string{name, registry.Title(name)})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
