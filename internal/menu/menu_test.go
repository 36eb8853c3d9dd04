package menu

import "testing"

func TestMnemonicExtraction(t *testing.T) {
	cases := []struct {
		title string
		want  rune
	}{
		{"&File", 'F'},
		{"F&ormat", 'O'},
		{"Save &As…", 'A'},
		{"Plain", 0},
		{"Trailing&", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Mnemonic(tc.title); got != tc.want {
			t.Fatalf("Mnemonic(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestCleanTitleStripsFirstMarkerOnly(t *testing.T) {
	if got := CleanTitle("&File"); got != "File" {
		t.Fatalf("expected %q, got %q", "File", got)
	}
	if got := CleanTitle("A && B"); got != "A & B" {
		t.Fatalf("expected %q, got %q", "A & B", got)
	}
	if got := CleanTitle("Plain"); got != "Plain" {
		t.Fatalf("expected unchanged title, got %q", got)
	}
}

func TestMnemonicIndex(t *testing.T) {
	if got := MnemonicIndex("F&ormat"); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := MnemonicIndex("Plain"); got != -1 {
		t.Fatalf("expected -1 for no marker, got %d", got)
	}
	if got := MnemonicIndex("Trailing&"); got != -1 {
		t.Fatalf("expected -1 for trailing marker, got %d", got)
	}
}

func TestModelLookup(t *testing.T) {
	m := NewModel(BarItems())
	if m.ItemCount() != 7 {
		t.Fatalf("expected 7 top-level menus, got %d", m.ItemCount())
	}
	if idx := m.ItemIndex("menu-edit"); idx != 1 {
		t.Fatalf("expected menu-edit at index 1, got %d", idx)
	}
	item, ok := m.ItemAt(0)
	if !ok || item.ID != "menu-file" {
		t.Fatalf("expected menu-file first, got %#v", item)
	}
	if _, ok := m.ItemAt(99); ok {
		t.Fatalf("expected out-of-range index to miss")
	}
	if _, ok := m.FindMenu("file-open"); ok {
		t.Fatalf("FindMenu must only match top-level menus")
	}
	deep, ok := m.FindItem("file-open")
	if !ok || deep.Action != "file-open" {
		t.Fatalf("expected deep lookup of file-open, got %#v (ok=%v)", deep, ok)
	}
}

func TestSetSubitemsRebuildsOpenRecent(t *testing.T) {
	m := NewModel(BarItems())
	entries := []Item{
		{ID: "recent:/tmp/a.mscz", Title: "a.mscz", Action: "file-open-recent"},
		{ID: "recent:/tmp/b.mscz", Title: "b.mscz", Action: "file-open-recent"},
	}
	if !m.SetSubitems(OpenRecentID, entries) {
		t.Fatalf("expected SetSubitems to locate %s", OpenRecentID)
	}
	item, ok := m.FindItem(OpenRecentID)
	if !ok || len(item.Items) != 2 {
		t.Fatalf("expected 2 recent entries, got %#v", item)
	}
	if m.SetSubitems("no-such-item", nil) {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestModelCopiesAreIndependent(t *testing.T) {
	defs := BarItems()
	m := NewModel(defs)
	defs[0].Items[0].Title = "mutated"
	item, _ := m.FindItem("file-new")
	if item.Title == "mutated" {
		t.Fatalf("model must own a copy of its definitions")
	}
}

func TestWalkLeavesVisitsActionsInOrder(t *testing.T) {
	m := NewModel(BarItems())
	var first, menuID string
	count := 0
	m.WalkLeaves(func(menu string, item Item) {
		if first == "" {
			first = item.ID
			menuID = menu
		}
		count++
	})
	if first != "file-new" || menuID != "menu-file" {
		t.Fatalf("expected file-new under menu-file first, got %s under %s", first, menuID)
	}
	if count == 0 {
		t.Fatalf("expected leaves to be visited")
	}
}
