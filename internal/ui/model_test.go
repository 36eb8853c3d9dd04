package ui

import (
	"testing"

	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/recent"
)

func newTestModel() *Model {
	return NewModel(Params{Width: 80, Height: 24})
}

func TestNewModelRegistersLeafActions(t *testing.T) {
	m := newTestModel()
	for _, name := range []string{"file-new", "file-quit", "edit-undo", "help-about"} {
		if !m.registry.Has(name) {
			t.Fatalf("expected action %q to be registered", name)
		}
	}
}

func TestNewModelFocusesFirstToolbarControl(t *testing.T) {
	m := newTestModel()
	ctl := m.nav.ActiveControl()
	if ctl == nil {
		t.Fatal("expected an active control after init")
	}
	if got := ctl.Name(); got != "new-score" {
		t.Fatalf("expected new-score focused, got %q", got)
	}
	if !m.nav.IsHighlighted() {
		t.Fatal("expected initial focus to be highlighted")
	}
}

func TestCycleFocusAdvancesPanels(t *testing.T) {
	m := newTestModel()
	m.cycleFocus()
	panel := m.nav.ActivePanel()
	if panel == nil || panel.Name() != "palettes" {
		t.Fatalf("expected palettes panel active, got %v", panel)
	}
	m.cycleFocus()
	m.cycleFocus()
	panel = m.nav.ActivePanel()
	if panel == nil || panel.Name() != "toolbar" {
		t.Fatalf("expected focus cycle to wrap to toolbar, got %v", panel)
	}
}

func TestRefreshOpenRecentAssignsDigitMnemonics(t *testing.T) {
	m := newTestModel()
	m.recents.SetEntries([]recent.Entry{
		{Path: "/scores/sonata.mscz"},
		{Path: "/scores/etude.mscz"},
	})
	m.refreshOpenRecent()

	item, ok := m.menus.FindItem(menu.OpenRecentID)
	if !ok {
		t.Fatal("open recent menu missing")
	}
	if len(item.Items) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(item.Items))
	}
	first := item.Items[0]
	if first.ID != recentIDPrefix+"/scores/sonata.mscz" {
		t.Fatalf("unexpected recent id %q", first.ID)
	}
	if got := menu.Mnemonic(first.Title); got != '1' {
		t.Fatalf("expected mnemonic '1', got %q", got)
	}
	if first.Action != "file-open-recent" {
		t.Fatalf("unexpected action %q", first.Action)
	}
}

func TestRefreshOpenRecentHonorsLimit(t *testing.T) {
	m := NewModel(Params{RecentMax: 1})
	m.recents.SetEntries([]recent.Entry{
		{Path: "/a.mscz"},
		{Path: "/b.mscz"},
	})
	m.refreshOpenRecent()

	item, _ := m.menus.FindItem(menu.OpenRecentID)
	if len(item.Items) != 1 {
		t.Fatalf("expected cap at 1 entry, got %d", len(item.Items))
	}
}

func TestFocusFirstControlPrefersOpenDropdown(t *testing.T) {
	m := newTestModel()
	m.openDropdown("menu-edit")
	m.focusFirstControl()
	ctl := m.nav.ActiveControl()
	if ctl == nil || ctl.Name() != "edit-undo" {
		t.Fatalf("expected edit-undo focused, got %v", ctl)
	}
}
