package ui

import (
	"reflect"
	"time"

	"github.com/fermata-io/menunav/internal/actions"
	"github.com/fermata-io/menunav/internal/backend"
	"github.com/fermata-io/menunav/internal/data/dispatcher"
	"github.com/fermata-io/menunav/internal/keys"
	"github.com/fermata-io/menunav/internal/menu"
	"github.com/fermata-io/menunav/internal/menubar"
	"github.com/fermata-io/menunav/internal/navigation"
	"github.com/fermata-io/menunav/internal/recent"
	"github.com/fermata-io/menunav/internal/state"
	"github.com/fermata-io/menunav/internal/theme"
	"github.com/fermata-io/menunav/internal/ui/command"
	uistate "github.com/fermata-io/menunav/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// appWindowName is the window identity handed to the menu-bar controller;
// every key event the shell receives belongs to this window unless a
// dropdown is open.
const appWindowName = "main"

// menuSection is the focus-subsystem section the dropdown registers its
// panels under.
const menuSection = "appmenu"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Params carries the configuration NewModel needs.
type Params struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RecentMax  int
	Keymap     KeyOverrides
	Store      *recent.Store
	Watcher    *backend.Watcher
}

// Model implements the Bubble Tea model for the notation editor shell.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	recentMax   int

	menus      *menu.Model
	nav        *navigation.Controller
	registry   *actions.Registry
	bus        *command.Bus
	controller *menubar.Controller

	store      *recent.Store
	recents    state.RecentStore
	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	keymap Keymap

	dropdown []*level
	palette  *level
	prompt   *fileForm

	filterCursor      cursor.Model
	filterCursorDirty bool

	currentFile string
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the shell, wiring the menu model, the focus
// subsystem, the action registry, and the menu-bar controller together.
func NewModel(p Params) *Model {
	recentMax := p.RecentMax
	if recentMax <= 0 {
		recentMax = 10
	}
	recents := state.NewRecentStore()
	registry := actions.NewRegistry()
	nav := navigation.NewController()
	menus := menu.NewModel(menu.BarItems())

	m := &Model{
		showFooter: p.ShowFooter,
		verbose:    p.Verbose,
		recentMax:  recentMax,
		menus:      menus,
		nav:        nav,
		registry:   registry,
		bus:        command.New(registry),
		store:      p.Store,
		recents:    recents,
		backend:    p.Watcher,
		dispatcher: dispatcher.New(recents),
		keymap:     NewKeymap(p.Keymap),
	}
	m.controller = menubar.New(menus, nav, registry, keys.USLayout{})
	m.controller.SetAppWindow(appWindowName)
	m.registerWorkspace()
	m.registerActions()
	m.subscribeController()

	if p.Width > 0 {
		m.width = p.Width
		m.fixedWidth = true
	}
	if p.Height > 0 {
		m.height = p.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.registerHandlers()
	return m
}

// Controller exposes the menu-bar controller, mainly for tests.
func (m *Model) Controller() *menubar.Controller {
	return m.controller
}

// Registry exposes the action registry for listing and tests.
func (m *Model) Registry() *actions.Registry {
	return m.registry
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handlePromptForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(4 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}
