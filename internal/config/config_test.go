package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != "" {
		t.Fatalf("expected empty db path, got %q", cfg.App.DBPath)
	}
	if cfg.App.RecentMax != 10 {
		t.Fatalf("expected default recent-max 10, got %d", cfg.App.RecentMax)
	}
	if cfg.Features.ListActions {
		t.Fatal("list-actions must default to false")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"MENUNAV_WIDTH=50", "MENUNAV_DB=/env.db"}
	cfg, err := LoadArgs([]string{"-width", "80"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag to win, got width %d", cfg.App.Width)
	}
	if cfg.App.DBPath != "/env.db" {
		t.Fatalf("expected env db path, got %q", cfg.App.DBPath)
	}
	if cfg.Flags["width"] != "80" {
		t.Fatalf("expected flags map to record width, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-recent-max", "0"}, nil); err == nil {
		t.Fatal("expected error for zero recent-max")
	}
}

func TestLoadArgsKeymapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	if err := os.WriteFile(path, []byte(`{"menu":"f9","palette":"ctrl+k"}`), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	cfg, err := LoadArgs([]string{"-keymap", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Keymap.Menu != "f9" {
		t.Fatalf("expected menu override f9, got %q", cfg.App.Keymap.Menu)
	}
	if cfg.App.Keymap.Palette != "ctrl+k" {
		t.Fatalf("expected palette override ctrl+k, got %q", cfg.App.Keymap.Palette)
	}
	if cfg.App.Keymap.Quit != "" {
		t.Fatalf("expected quit untouched, got %q", cfg.App.Keymap.Quit)
	}
}

func TestLoadArgsKeymapFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	if _, err := LoadArgs([]string{"-keymap", path}, nil); err == nil {
		t.Fatal("expected error for invalid keymap file")
	}
}
