// Package navigation implements the focus subsystem the menu bar hands
// keyboard focus to and from. Sections own panels, panels own ordered
// controls; at most one control is active at a time.
package navigation

import "github.com/fermata-io/menunav/internal/logging/events"

// Control is a focusable UI element registered with the controller.
type Control struct {
	name      string
	panel     *Panel
	active    bool
	onActive  func()
	onTrigger func()
}

// Name returns the control's registered name.
func (c *Control) Name() string {
	return c.name
}

// IsActive reports whether the control currently holds focus.
func (c *Control) IsActive() bool {
	return c.active
}

// SetActive marks or clears focus without routing through the controller's
// activation path. Clearing focus on the active control leaves the controller
// with no active control.
func (c *Control) SetActive(active bool) {
	if c.active == active {
		return
	}
	c.active = active
	ctrl := c.panel.section.controller
	if active {
		ctrl.noteActive(c)
	} else if ctrl.active == c {
		ctrl.active = nil
	}
}

// RequestActive asks the controller to focus this control.
func (c *Control) RequestActive() {
	c.panel.section.controller.activate(c)
}

// Trigger fires the control's action callback, simulating user activation.
func (c *Control) Trigger() {
	events.Navigation.Trigger(c.panel.section.name, c.panel.name, c.name)
	if c.onTrigger != nil {
		c.onTrigger()
	}
}

// OnActive registers a callback fired when the control gains focus.
func (c *Control) OnActive(fn func()) {
	c.onActive = fn
}

// OnTrigger registers a callback fired when the control is triggered.
func (c *Control) OnTrigger(fn func()) {
	c.onTrigger = fn
}

// Panel is an ordered group of controls within a section.
type Panel struct {
	name     string
	section  *Section
	controls []*Control
}

// Name returns the panel's registered name.
func (p *Panel) Name() string {
	return p.name
}

// Controls returns the panel's controls in registration order.
func (p *Panel) Controls() []*Control {
	return append([]*Control(nil), p.controls...)
}

// FirstControl returns the panel's first control, or nil when empty.
func (p *Panel) FirstControl() *Control {
	if len(p.controls) == 0 {
		return nil
	}
	return p.controls[0]
}

// Section is a top-level focus scope, e.g. the main window or the app menu.
type Section struct {
	name       string
	controller *Controller
	panels     []*Panel
}

// Name returns the section's registered name.
func (s *Section) Name() string {
	return s.name
}

// Controller tracks registered sections, panels, and controls, and which
// control is active. Single-threaded; all calls happen on the UI thread.
type Controller struct {
	sections    []*Section
	active      *Control
	highlighted bool
}

// NewController creates an empty focus controller.
func NewController() *Controller {
	return &Controller{}
}

// RegisterSection adds a section, returning the existing one on name reuse.
func (c *Controller) RegisterSection(name string) *Section {
	for _, s := range c.sections {
		if s.name == name {
			return s
		}
	}
	s := &Section{name: name, controller: c}
	c.sections = append(c.sections, s)
	return s
}

// RegisterPanel adds a panel under a section, returning the existing one on
// name reuse.
func (c *Controller) RegisterPanel(section, name string) *Panel {
	s := c.RegisterSection(section)
	for _, p := range s.panels {
		if p.name == name {
			return p
		}
	}
	p := &Panel{name: name, section: s}
	s.panels = append(s.panels, p)
	return p
}

// RegisterControl adds a control under a section/panel pair.
func (c *Controller) RegisterControl(section, panel, name string) *Control {
	p := c.RegisterPanel(section, panel)
	for _, existing := range p.controls {
		if existing.name == name {
			return existing
		}
	}
	ctl := &Control{name: name, panel: p}
	p.controls = append(p.controls, ctl)
	return ctl
}

// UnregisterPanel removes a panel and its controls, dropping the active
// control if it lived there.
func (c *Controller) UnregisterPanel(section, name string) {
	for _, s := range c.sections {
		if s.name != section {
			continue
		}
		for i, p := range s.panels {
			if p.name != name {
				continue
			}
			if c.active != nil && c.active.panel == p {
				c.active = nil
			}
			s.panels = append(s.panels[:i], s.panels[i+1:]...)
			return
		}
	}
}

// ActiveSection returns the section owning the active control, or nil.
func (c *Controller) ActiveSection() *Section {
	if c.active == nil {
		return nil
	}
	return c.active.panel.section
}

// ActivePanel returns the panel owning the active control, or nil.
func (c *Controller) ActivePanel() *Panel {
	if c.active == nil {
		return nil
	}
	return c.active.panel
}

// ActiveControl returns the active control, or nil.
func (c *Controller) ActiveControl() *Control {
	return c.active
}

// IsHighlighted reports whether keyboard-focus highlighting is visible.
func (c *Controller) IsHighlighted() bool {
	return c.highlighted
}

// SetHighlighted toggles keyboard-focus highlighting.
func (c *Controller) SetHighlighted(on bool) {
	c.highlighted = on
}

// FindControl resolves a control by its (section, panel, control) names.
func (c *Controller) FindControl(section, panel, name string) (*Control, bool) {
	for _, s := range c.sections {
		if s.name != section {
			continue
		}
		for _, p := range s.panels {
			if p.name != panel {
				continue
			}
			for _, ctl := range p.controls {
				if ctl.name == name {
					return ctl, true
				}
			}
		}
	}
	return nil, false
}

// RequestActivateByName focuses the named control. Unknown names are a no-op
// returning false; the caller treats that as "nothing to do".
func (c *Controller) RequestActivateByName(section, panel, name string) bool {
	ctl, ok := c.FindControl(section, panel, name)
	if !ok {
		events.Navigation.ActivateMiss(section, panel, name)
		return false
	}
	c.activate(ctl)
	return true
}

func (c *Controller) activate(target *Control) {
	if c.active != nil && c.active != target {
		c.active.active = false
	}
	target.active = true
	c.active = target
	c.highlighted = true
	events.Navigation.Activate(target.panel.section.name, target.panel.name, target.name)
	if target.onActive != nil {
		target.onActive()
	}
}

func (c *Controller) noteActive(target *Control) {
	if c.active != nil && c.active != target {
		c.active.active = false
	}
	c.active = target
}
