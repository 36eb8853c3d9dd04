// Package menubar implements keyboard-driven navigation for the application
// menu bar. A single controller filters host input events, runs the
// Idle/Highlighted/Open state machine, and resolves '&'-marked mnemonics
// against the active keyboard layout.
package menubar

import (
	"github.com/fermata-io/menunav/internal/actions"
	"github.com/fermata-io/menunav/internal/keys"
	"github.com/fermata-io/menunav/internal/logging/events"
	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/navigation"
)

// Dispatcher executes named commands on behalf of the controller.
type Dispatcher interface {
	Dispatch(name string) error
}

// Target identifies where the host event system delivered an event.
type Target struct {
	Window   string
	TopLevel bool
}

// savedFocus remembers the focus-subsystem control that was active before
// navigation started, as a name triple re-resolved at restore time.
type savedFocus struct {
	section string
	panel   string
	control string
}

// Controller owns the highlighted/opened menu state and interprets keyboard
// events into menu-bar navigation. All methods run on the UI thread.
type Controller struct {
	model      *menu.Model
	nav        *navigation.Controller
	dispatcher Dispatcher
	resolver   keys.Resolver

	appWindow             string
	highlighted           string
	opened                string
	needActivateHighlight bool
	saved                 *savedFocus

	highlightedSubs []func(id string)
	openedSubs      []func(id string)
	openMenuSubs    []func(id string)
}

// New wires a controller to its collaborators. SetAppWindow must be called
// before events are routed to the main handler.
func New(model *menu.Model, nav *navigation.Controller, dispatcher Dispatcher, resolver keys.Resolver) *Controller {
	return &Controller{
		model:      model,
		nav:        nav,
		dispatcher: dispatcher,
		resolver:   resolver,
	}
}

// SetAppWindow names the window whose events feed the main navigation
// handler. Set once at startup by the application shell.
func (c *Controller) SetAppWindow(name string) {
	c.appWindow = name
}

// HighlightedMenuID returns the highlighted top-level menu, empty when
// navigation is not active.
func (c *Controller) HighlightedMenuID() string {
	return c.highlighted
}

// OpenedMenuID returns the currently open menu, empty when none is open.
func (c *Controller) OpenedMenuID() string {
	return c.opened
}

// IsNavigationStarted reports whether menu navigation is active.
func (c *Controller) IsNavigationStarted() bool {
	return c.highlighted != ""
}

// OnHighlightedChanged subscribes to highlight changes. Callbacks fire only
// when the value actually changes.
func (c *Controller) OnHighlightedChanged(fn func(id string)) {
	c.highlightedSubs = append(c.highlightedSubs, fn)
}

// OnOpenedChanged subscribes to opened-menu changes.
func (c *Controller) OnOpenedChanged(fn func(id string)) {
	c.openedSubs = append(c.openedSubs, fn)
}

// OnOpenMenu subscribes to the open-menu signal. The rendering layer shows
// the dropdown and reports back through SetOpenedMenuID.
func (c *Controller) OnOpenMenu(fn func(id string)) {
	c.openMenuSubs = append(c.openMenuSubs, fn)
}

// SetOpenedMenuID records which menu the rendering layer has open.
func (c *Controller) SetOpenedMenuID(id string) {
	if c.opened == id {
		return
	}
	c.opened = id
	events.Menubar.Opened(id)
	for _, fn := range c.openedSubs {
		fn(id)
	}
}

// Reset exits navigation without touching saved focus state. Called when the
// application window deactivates.
func (c *Controller) Reset() {
	c.needActivateHighlight = false
	c.resetNavigation()
}

// CancelNavigation exits navigation and hands focus back to the control that
// held it before navigation started, the same as pressing Escape.
func (c *Controller) CancelNavigation() {
	c.needActivateHighlight = false
	c.resetNavigation()
	c.restoreFocusState()
}

// FilterEvent inspects a host event and reports whether the controller
// consumed it. Consumed events must be suppressed from default handling.
func (c *Controller) FilterEvent(target Target, ev keys.Event) bool {
	if c.opened != "" && target.TopLevel {
		return c.processEventForOpenedMenu(ev)
	}
	if c.appWindow != "" && target.Window == c.appWindow {
		return c.processEventForAppMenu(ev)
	}
	return false
}

// processEventForOpenedMenu lets a typed mnemonic jump to a subitem of the
// open menu. Only shortcut-override checks for plain single characters
// qualify.
func (c *Controller) processEventForOpenedMenu(ev keys.Event) bool {
	if ev.Kind != keys.KindShortcutOverride {
		return false
	}
	if !ev.Mods.IsEmpty() {
		return false
	}
	if _, ok := ev.SingleRune(); !ok {
		return false
	}
	opened, ok := c.model.FindMenu(c.opened)
	if !ok {
		return false
	}
	possible := c.resolver.PossibleKeys(ev)
	sub, ok := MatchMnemonic(opened.Items, possible, c.resolver)
	if !ok {
		return false
	}
	c.navigateToSubItem(sub)
	return true
}

func (c *Controller) navigateToSubItem(item menu.Item) {
	section := c.nav.ActiveSection()
	panel := c.nav.ActivePanel()
	if section == nil || panel == nil || c.nav.ActiveControl() == nil {
		events.Menubar.SubItemSkip(item.ID)
		return
	}
	events.Menubar.SubItemActivate(section.Name(), panel.Name(), item.ID)
	if !c.nav.RequestActivateByName(section.Name(), panel.Name(), item.ID) {
		return
	}
	if !item.IsLeaf() {
		if ctl, ok := c.nav.FindControl(section.Name(), panel.Name(), item.ID); ok {
			ctl.Trigger()
		}
	}
}

func (c *Controller) processEventForAppMenu(ev keys.Event) bool {
	switch ev.Kind {
	case keys.KindShortcutOverride:
		if c.IsNavigationStarted() && isNavigateKey(ev.Key) {
			return true
		}
		if possible, ok := c.mnemonicKeys(ev); ok {
			if _, match := MatchMnemonic(c.model.Items(), possible, c.resolver); match {
				return true
			}
		}
		return false

	case keys.KindKeyDown:
		if ev.Key == keys.KeyAlt && !ev.Mods.HasShift() {
			c.needActivateHighlight = true
			return false
		}
		if c.IsNavigationStarted() && isNavigateKey(ev.Key) {
			c.navigate(ev.Key)
			c.needActivateHighlight = false
			return true
		}
		if possible, ok := c.mnemonicKeys(ev); ok {
			if _, match := MatchMnemonic(c.model.Items(), possible, c.resolver); match {
				c.navigateByMnemonic(possible)
				c.needActivateHighlight = true
				return true
			}
		}
		return false

	case keys.KindKeyUp:
		if ev.Key != keys.KeyAlt {
			return false
		}
		if c.IsNavigationStarted() {
			c.needActivateHighlight = false
			c.resetNavigation()
			c.restoreFocusState()
		} else if c.needActivateHighlight {
			c.needActivateHighlight = false
			c.saveFocusState()
			c.highlightFirstMenu()
		} else {
			// Alt was part of a combo; arming here keeps the next bare
			// release from being swallowed.
			c.needActivateHighlight = true
		}
		return false

	case keys.KindMouseDown:
		c.resetNavigation()
		return false
	}
	return false
}

// mnemonicKeys qualifies an event as a potential mnemonic press: a single
// typed character, either plain while navigating or Alt without Shift, and
// resolves its possible key codes.
func (c *Controller) mnemonicKeys(ev keys.Event) (keys.Set, bool) {
	if _, ok := ev.SingleRune(); !ok {
		return nil, false
	}
	plainWhileNavigating := c.IsNavigationStarted() && ev.Mods.IsEmpty()
	altChord := ev.Mods.HasAlt() && !ev.Mods.HasShift()
	if !plainWhileNavigating && !altChord {
		return nil, false
	}
	possible := c.resolver.PossibleKeys(ev)
	if possible.Empty() {
		return nil, false
	}
	return possible, true
}

// navigate handles one navigation key while navigation is active.
func (c *Controller) navigate(key keys.Key) {
	switch key {
	case keys.KeyLeft:
		c.highlightStep(-1)
	case keys.KeyRight:
		c.highlightStep(1)
	case keys.KeyDown, keys.KeySpace, keys.KeyReturn:
		c.activateHighlightedMenu()
	case keys.KeyEscape:
		c.resetNavigation()
		c.restoreFocusState()
	}
}

// navigateByMnemonic highlights the first menu whose mnemonic intersects the
// possible keys, then activates it.
func (c *Controller) navigateByMnemonic(possible keys.Set) {
	item, ok := MatchMnemonic(c.model.Items(), possible, c.resolver)
	if !ok {
		return
	}
	c.saveFocusState()
	c.setHighlighted(item.ID)
	c.activateHighlightedMenu()
}

// highlightStep moves the highlight cyclically by delta top-level items.
func (c *Controller) highlightStep(delta int) {
	count := c.model.ItemCount()
	if count == 0 {
		return
	}
	idx := c.model.ItemIndex(c.highlighted)
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%count + count) % count
	}
	if item, ok := c.model.ItemAt(idx); ok {
		c.setHighlighted(item.ID)
	}
}

func (c *Controller) highlightFirstMenu() {
	if item, ok := c.model.ItemAt(0); ok {
		c.setHighlighted(item.ID)
	}
}

// activateHighlightedMenu emits the open-menu signal and hands focus to the
// menu's first control.
func (c *Controller) activateHighlightedMenu() {
	if c.highlighted == "" {
		return
	}
	events.Menubar.OpenMenu(c.highlighted)
	for _, fn := range c.openMenuSubs {
		fn(c.highlighted)
	}
	if c.dispatcher != nil {
		_ = c.dispatcher.Dispatch(actions.NavFirstControl)
	}
}

func (c *Controller) resetNavigation() {
	events.Menubar.ResetNavigation(c.highlighted)
	c.setHighlighted("")
}

func (c *Controller) setHighlighted(id string) {
	if c.highlighted == id {
		return
	}
	c.highlighted = id
	events.Menubar.Highlighted(id)
	for _, fn := range c.highlightedSubs {
		fn(id)
	}
}

// saveFocusState captures the active focus-subsystem control and deactivates
// it, so the menu flow owns the keyboard until restore.
func (c *Controller) saveFocusState() {
	if !c.nav.IsHighlighted() {
		return
	}
	section := c.nav.ActiveSection()
	panel := c.nav.ActivePanel()
	control := c.nav.ActiveControl()
	if section == nil || panel == nil || control == nil {
		return
	}
	c.saved = &savedFocus{section: section.Name(), panel: panel.Name(), control: control.Name()}
	events.Menubar.SaveFocus(c.saved.section, c.saved.panel, c.saved.control)
	control.SetActive(false)
	c.nav.SetHighlighted(false)
}

// restoreFocusState re-resolves the saved control by name and reactivates it.
// A control that vanished in the meantime makes this a no-op.
func (c *Controller) restoreFocusState() {
	if c.saved == nil {
		return
	}
	saved := *c.saved
	c.saved = nil
	events.Menubar.RestoreFocus(saved.section, saved.panel, saved.control)
	c.nav.RequestActivateByName(saved.section, saved.panel, saved.control)
}

func isNavigateKey(key keys.Key) bool {
	switch key {
	case keys.KeyLeft, keys.KeyRight, keys.KeyDown, keys.KeySpace, keys.KeyEscape, keys.KeyReturn:
		return true
	}
	return false
}

// MatchMnemonic scans items in order for the first one whose mnemonic's
// possible keys intersect the given set. Order is the tie-break; items
// without a marker are skipped.
func MatchMnemonic(items []menu.Item, possible keys.Set, resolver keys.Resolver) (menu.Item, bool) {
	for _, item := range items {
		mn := item.Mnemonic()
		if mn == 0 {
			continue
		}
		if keys.PossibleKeysForRune(resolver, mn).Intersects(possible) {
			return item, true
		}
	}
	return menu.Item{}, false
}
