// Package actions routes named commands to their registered handlers.
package actions

import "github.com/fermata-io/menunav/internal/logging/events"

// NavFirstControl is the command the menu bar dispatches after opening a
// menu, moving focus onto the first interactive control.
const NavFirstControl = "nav-first-control"

// Handler executes a named action. The argument carries action-specific
// payload (e.g. a file path) and is empty for plain dispatches.
type Handler func(arg string) error

// Registry maps action names to handlers, preserving registration order for
// listings.
type Registry struct {
	handlers map[string]Handler
	titles   map[string]string
	order    []string
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		titles:   make(map[string]string),
	}
}

// Register binds a handler to an action name. Re-registration replaces the
// handler and keeps the original ordering slot.
func (r *Registry) Register(name, title string, handler Handler) {
	if _, exists := r.handlers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.handlers[name] = handler
	r.titles[name] = title
}

// Dispatch runs the named action with no argument.
func (r *Registry) Dispatch(name string) error {
	return r.DispatchArg(name, "")
}

// DispatchArg runs the named action with an argument. Unknown actions are a
// traced no-op, matching the module's skip-on-missing failure policy.
func (r *Registry) DispatchArg(name, arg string) error {
	handler, ok := r.handlers[name]
	if !ok || handler == nil {
		events.Command.Unknown(name)
		return nil
	}
	events.Command.Dispatch(name, arg)
	if err := handler(arg); err != nil {
		events.Command.Error(name, err)
		return err
	}
	return nil
}

// Has reports whether an action is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Title returns the display title registered for an action.
func (r *Registry) Title(name string) string {
	return r.titles[name]
}

// Names returns action names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
