package menubar

import (
	"testing"

	"github.com/fermata-io/menunav/internal/actions"
	"github.com/fermata-io/menunav/internal/keys"
	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/navigation"
)

type stubDispatcher struct {
	names []string
}

func (d *stubDispatcher) Dispatch(name string) error {
	d.names = append(d.names, name)
	return nil
}

var (
	appTarget = Target{Window: "main"}
	topLevel  = Target{TopLevel: true}
)

func newFixture() (*Controller, *navigation.Controller, *stubDispatcher) {
	model := menu.NewModel(menu.BarItems())
	nav := navigation.NewController()
	dispatcher := &stubDispatcher{}
	c := New(model, nav, dispatcher, keys.USLayout{})
	c.SetAppWindow("main")
	return c, nav, dispatcher
}

func enterNavigation(t *testing.T, c *Controller) {
	t.Helper()
	c.FilterEvent(appTarget, keys.Press(keys.KeyAlt, keys.ModAlt))
	c.FilterEvent(appTarget, keys.Release(keys.KeyAlt, keys.ModNone))
	if !c.IsNavigationStarted() {
		t.Fatalf("expected navigation to start after Alt press/release")
	}
}

func TestResetWhenIdleIsIdempotent(t *testing.T) {
	c, _, _ := newFixture()
	fired := 0
	c.OnHighlightedChanged(func(string) { fired++ })
	c.Reset()
	if c.HighlightedMenuID() != "" {
		t.Fatalf("expected empty highlight, got %q", c.HighlightedMenuID())
	}
	if fired != 0 {
		t.Fatalf("reset in idle must not notify, fired %d times", fired)
	}
}

func TestAltEnterSequence(t *testing.T) {
	c, _, _ := newFixture()
	if consumed := c.FilterEvent(appTarget, keys.Press(keys.KeyAlt, keys.ModAlt)); consumed {
		t.Fatalf("Alt key-down must not be consumed")
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("Alt key-down alone must not change visible state")
	}
	c.FilterEvent(appTarget, keys.Release(keys.KeyAlt, keys.ModNone))
	if c.HighlightedMenuID() != "menu-file" {
		t.Fatalf("expected first menu highlighted, got %q", c.HighlightedMenuID())
	}
}

func TestAltEnterSavesAndDeactivatesFocus(t *testing.T) {
	c, nav, _ := newFixture()
	nav.RegisterControl("main", "toolbar", "play")
	nav.RequestActivateByName("main", "toolbar", "play")

	enterNavigation(t, c)

	if ctl, _ := nav.FindControl("main", "toolbar", "play"); ctl.IsActive() {
		t.Fatalf("expected captured control deactivated while navigating")
	}
}

func TestCyclicWrap(t *testing.T) {
	c, _, _ := newFixture()
	enterNavigation(t, c)

	right := keys.Press(keys.KeyRight, keys.ModNone)
	left := keys.Press(keys.KeyLeft, keys.ModNone)

	if !c.FilterEvent(appTarget, left) {
		t.Fatalf("expected Left consumed while navigating")
	}
	if c.HighlightedMenuID() != "menu-help" {
		t.Fatalf("expected Left from first item to wrap to last, got %q", c.HighlightedMenuID())
	}
	if !c.FilterEvent(appTarget, right) {
		t.Fatalf("expected Right consumed while navigating")
	}
	if c.HighlightedMenuID() != "menu-file" {
		t.Fatalf("expected Right from last item to wrap to first, got %q", c.HighlightedMenuID())
	}
}

func TestModeGating(t *testing.T) {
	c, _, _ := newFixture()
	if c.FilterEvent(appTarget, keys.Press(keys.KeyRight, keys.ModNone)) {
		t.Fatalf("plain Right with no navigation must not be consumed")
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("state must not change, got %q", c.HighlightedMenuID())
	}
	if c.FilterEvent(appTarget, keys.ShortcutOverride(keys.Typed('e', keys.ModNone))) {
		t.Fatalf("plain mnemonic must not be claimed while idle")
	}
}

func TestMnemonicFirstMatchWins(t *testing.T) {
	items := []menu.Item{
		{ID: "foo", Title: "&Foo"},
		{ID: "bar", Title: "&Bar"},
		{ID: "baz", Title: "Baz (&F)"},
	}
	possible := keys.PossibleKeysForRune(keys.USLayout{}, 'F')
	item, ok := MatchMnemonic(items, possible, keys.USLayout{})
	if !ok || item.ID != "foo" {
		t.Fatalf("expected first match foo, got %#v (ok=%v)", item, ok)
	}
	if _, ok := MatchMnemonic(items, keys.NewSet(keys.KeyZ), keys.USLayout{}); ok {
		t.Fatalf("expected no match for unbound key")
	}
}

func TestAltMnemonicActivatesMenu(t *testing.T) {
	c, _, dispatcher := newFixture()
	var openedVia string
	c.OnOpenMenu(func(id string) { openedVia = id })

	check := keys.ShortcutOverride(keys.Typed('e', keys.ModAlt))
	if !c.FilterEvent(appTarget, check) {
		t.Fatalf("expected Alt+E shortcut-override claimed")
	}
	if !c.FilterEvent(appTarget, keys.Typed('e', keys.ModAlt)) {
		t.Fatalf("expected Alt+E key-down consumed")
	}
	if c.HighlightedMenuID() != "menu-edit" {
		t.Fatalf("expected menu-edit highlighted, got %q", c.HighlightedMenuID())
	}
	if openedVia != "menu-edit" {
		t.Fatalf("expected open-menu signal for menu-edit, got %q", openedVia)
	}
	if len(dispatcher.names) != 1 || dispatcher.names[0] != actions.NavFirstControl {
		t.Fatalf("expected %s dispatched, got %v", actions.NavFirstControl, dispatcher.names)
	}
}

func TestPlainMnemonicWhileNavigating(t *testing.T) {
	c, _, _ := newFixture()
	enterNavigation(t, c)
	if !c.FilterEvent(appTarget, keys.ShortcutOverride(keys.Typed('v', keys.ModNone))) {
		t.Fatalf("expected plain mnemonic claimed while navigating")
	}
	if !c.FilterEvent(appTarget, keys.Typed('v', keys.ModNone)) {
		t.Fatalf("expected plain mnemonic consumed while navigating")
	}
	if c.HighlightedMenuID() != "menu-view" {
		t.Fatalf("expected menu-view highlighted, got %q", c.HighlightedMenuID())
	}
}

func TestShiftedAltChordIsIgnored(t *testing.T) {
	c, _, _ := newFixture()
	if c.FilterEvent(appTarget, keys.Typed('E', keys.ModAlt|keys.ModShift)) {
		t.Fatalf("Alt+Shift chords must not trigger mnemonics")
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("state must not change, got %q", c.HighlightedMenuID())
	}
}

func TestNavigationKeysClaimedWhileNavigating(t *testing.T) {
	c, _, _ := newFixture()
	enterNavigation(t, c)
	for _, key := range []keys.Key{keys.KeyLeft, keys.KeyRight, keys.KeyDown, keys.KeySpace, keys.KeyEscape, keys.KeyReturn} {
		if !c.FilterEvent(appTarget, keys.ShortcutOverride(keys.Press(key, keys.ModNone))) {
			t.Fatalf("expected %v claimed while navigating", key)
		}
	}
}

func TestEscapeRestoresFocus(t *testing.T) {
	c, nav, _ := newFixture()
	nav.RegisterControl("main", "toolbar", "play")
	nav.RequestActivateByName("main", "toolbar", "play")

	enterNavigation(t, c)

	if !c.FilterEvent(appTarget, keys.Press(keys.KeyEscape, keys.ModNone)) {
		t.Fatalf("expected Escape consumed")
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("expected navigation reset, got %q", c.HighlightedMenuID())
	}
	ctl, _ := nav.FindControl("main", "toolbar", "play")
	if !ctl.IsActive() {
		t.Fatalf("expected captured control reactivated after Escape")
	}
}

func TestEscapeRestoreSurvivesVanishedControl(t *testing.T) {
	c, nav, _ := newFixture()
	nav.RegisterControl("main", "toolbar", "play")
	nav.RequestActivateByName("main", "toolbar", "play")

	enterNavigation(t, c)
	nav.UnregisterPanel("main", "toolbar")

	if !c.FilterEvent(appTarget, keys.Press(keys.KeyEscape, keys.ModNone)) {
		t.Fatalf("expected Escape consumed")
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("expected navigation reset, got %q", c.HighlightedMenuID())
	}
}

func TestOutsideClickCancelsWithoutRestore(t *testing.T) {
	c, nav, _ := newFixture()
	nav.RegisterControl("main", "toolbar", "play")
	nav.RequestActivateByName("main", "toolbar", "play")

	enterNavigation(t, c)

	if c.FilterEvent(appTarget, keys.MouseDown()) {
		t.Fatalf("mouse press falls through to default handling")
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("expected navigation cancelled, got %q", c.HighlightedMenuID())
	}
	ctl, _ := nav.FindControl("main", "toolbar", "play")
	if ctl.IsActive() {
		t.Fatalf("mouse cancel must not restore focus")
	}
}

func TestAltReleaseAfterExitFollowsRestore(t *testing.T) {
	c, nav, _ := newFixture()
	nav.RegisterControl("main", "toolbar", "play")
	nav.RequestActivateByName("main", "toolbar", "play")

	enterNavigation(t, c)
	c.FilterEvent(appTarget, keys.Release(keys.KeyAlt, keys.ModNone))

	if c.HighlightedMenuID() != "" {
		t.Fatalf("expected Alt release while navigating to exit, got %q", c.HighlightedMenuID())
	}
	ctl, _ := nav.FindControl("main", "toolbar", "play")
	if !ctl.IsActive() {
		t.Fatalf("expected Alt exit to restore focus")
	}
}

func TestBareAltReleaseWithoutIntentDoesNotHighlight(t *testing.T) {
	c, _, _ := newFixture()
	// No preceding Alt key-down: the release only arms the intent flag.
	c.FilterEvent(appTarget, keys.Release(keys.KeyAlt, keys.ModNone))
	if c.HighlightedMenuID() != "" {
		t.Fatalf("release without intent must not highlight, got %q", c.HighlightedMenuID())
	}
	c.FilterEvent(appTarget, keys.Release(keys.KeyAlt, keys.ModNone))
	if c.HighlightedMenuID() != "menu-file" {
		t.Fatalf("armed release should highlight first menu, got %q", c.HighlightedMenuID())
	}
}

func TestOpenMenuMnemonicRouting(t *testing.T) {
	c, nav, _ := newFixture()
	// The dropdown registers its items as a panel and focuses the first one.
	nav.RegisterControl("appmenu", "menu-file", "file-new")
	nav.RegisterControl("appmenu", "menu-file", "file-open")
	nav.RequestActivateByName("appmenu", "menu-file", "file-new")
	c.SetOpenedMenuID("menu-file")

	check := keys.ShortcutOverride(keys.Typed('o', keys.ModNone))
	if !c.FilterEvent(topLevel, check) {
		t.Fatalf("expected subitem mnemonic consumed")
	}
	if nav.ActiveControl() == nil || nav.ActiveControl().Name() != "file-open" {
		t.Fatalf("expected file-open focused, got %v", nav.ActiveControl())
	}
	if c.HighlightedMenuID() != "" {
		t.Fatalf("submenu routing must not touch the bar highlight")
	}
}

func TestOpenMenuMnemonicTriggersSubmenus(t *testing.T) {
	c, nav, _ := newFixture()
	nav.RegisterControl("appmenu", "menu-file", "file-new")
	recent := nav.RegisterControl("appmenu", "menu-file", menu.OpenRecentID)
	triggered := false
	recent.OnTrigger(func() { triggered = true })
	nav.RequestActivateByName("appmenu", "menu-file", "file-new")
	c.SetOpenedMenuID("menu-file")

	check := keys.ShortcutOverride(keys.Typed('r', keys.ModNone))
	if !c.FilterEvent(topLevel, check) {
		t.Fatalf("expected Open Recent mnemonic consumed")
	}
	if !triggered {
		t.Fatalf("expected submenu item triggered to open it")
	}
}

func TestOpenMenuMnemonicSkipsWhenNothingFocused(t *testing.T) {
	c, _, _ := newFixture()
	c.SetOpenedMenuID("menu-file")
	// Matching mnemonic, but no active section/panel to scope the request.
	if !c.FilterEvent(topLevel, keys.ShortcutOverride(keys.Typed('o', keys.ModNone))) {
		t.Fatalf("expected event consumed even when activation skips")
	}
}

func TestOpenMenuHandlerQualification(t *testing.T) {
	c, _, _ := newFixture()
	c.SetOpenedMenuID("menu-file")
	if c.FilterEvent(topLevel, keys.Typed('o', keys.ModNone)) {
		t.Fatalf("only shortcut-override checks qualify")
	}
	if c.FilterEvent(topLevel, keys.ShortcutOverride(keys.Typed('o', keys.ModCtrl))) {
		t.Fatalf("modified keys do not qualify")
	}
	if c.FilterEvent(topLevel, keys.ShortcutOverride(keys.Typed('z', keys.ModNone))) {
		t.Fatalf("unmatched mnemonics fall through")
	}
}

func TestEventRouting(t *testing.T) {
	c, _, _ := newFixture()
	stray := Target{Window: "inspector"}
	if c.FilterEvent(stray, keys.Press(keys.KeyAlt, keys.ModAlt)) {
		t.Fatalf("events for other windows are never consumed")
	}
	c.FilterEvent(stray, keys.Release(keys.KeyAlt, keys.ModNone))
	if c.HighlightedMenuID() != "" {
		t.Fatalf("events for other windows must not mutate state")
	}
}

func TestOpenedChangeNotifiesOnlyOnChange(t *testing.T) {
	c, _, _ := newFixture()
	fired := 0
	c.OnOpenedChanged(func(string) { fired++ })
	c.SetOpenedMenuID("menu-file")
	c.SetOpenedMenuID("menu-file")
	if fired != 1 {
		t.Fatalf("expected a single notification, got %d", fired)
	}
	if c.OpenedMenuID() != "menu-file" {
		t.Fatalf("unexpected opened id %q", c.OpenedMenuID())
	}
}
