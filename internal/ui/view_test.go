package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewRendersBarAndWorkspace(t *testing.T) {
	m := newTestModel()
	view := m.View()
	for _, want := range []string{"File", "Edit", "Format", "Toolbar", "Palettes", "[new-score]", "No score open"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestViewRendersDropdownItems(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Send(tea.KeyMsg{Type: tea.KeyF10})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	view := h.View()
	for _, want := range []string{"New", "Open Recent", "Quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected dropdown to show %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "&New") {
		t.Fatal("mnemonic markers must not leak into the rendered view")
	}
}

func TestViewRendersPrompt(t *testing.T) {
	m := newTestModel()
	m.openPrompt("file-save-as")
	view := m.View()
	if !strings.Contains(view, "Save score as") {
		t.Fatalf("expected prompt title in view:\n%s", view)
	}
}

func TestViewRendersPalette(t *testing.T) {
	m := newTestModel()
	m.openPalette()
	view := m.View()
	if !strings.Contains(view, "Actions") {
		t.Fatalf("expected palette title in view:\n%s", view)
	}
}

func TestViewStatusShowsCurrentFile(t *testing.T) {
	m := newTestModel()
	m.currentFile = "/scores/nocturne.mscz"
	if view := m.View(); !strings.Contains(view, "nocturne.mscz") {
		t.Fatalf("expected current file in status:\n%s", view)
	}
}

func TestViewFooterListsBindings(t *testing.T) {
	m := NewModel(Params{Width: 120, ShowFooter: true})
	view := m.View()
	for _, want := range []string{"f10 menu", "ctrl+p palette", "ctrl+c quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected footer binding %q:\n%s", want, view)
		}
	}
}

func TestViewClampsToWidth(t *testing.T) {
	m := NewModel(Params{Width: 10})
	for _, line := range strings.Split(m.View(), "\n") {
		if w := visibleWidth(line); w > 10 {
			t.Fatalf("line exceeds width: %d chars in %q", w, line)
		}
	}
}

func visibleWidth(line string) int {
	width := 0
	inEscape := false
	for _, r := range line {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}
