package ui

import (
	"reflect"

	"github.com/atomicstack/header-menu/internal/backend"
	"github.com/atomicstack/header-menu/internal/data/dispatcher"
	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/atomicstack/header-menu/internal/navigation"
	"github.com/atomicstack/header-menu/internal/state"
	"github.com/atomicstack/header-menu/internal/theme"
	uistate "github.com/atomicstack/header-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Sessions state.SessionStore
	Watcher  *backend.Watcher
	Detector layout.Detector
	// AutoScreen lets the terminal width pick the screen class on resize.
	AutoScreen bool
	Page       string
	Plain      bool
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Navigators receive every executed click command after the model's
	// own bus has recorded it.
	Navigators []navigation.Navigator
}

// Model implements the Bubble Tea model for the header preview.
type Model struct {
	header layout.Header
	bar    int
	stack  []*level
	filter textinput.Model

	status         string
	errMsg         string
	backendLastErr string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	autoScreen  bool
	page        string
	plain       bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler

	detector   layout.Detector
	bus        *navigation.Bus
	assembler  *layout.Assembler
	sessions   state.SessionStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher
}

// NewModel builds the header from the current snapshot and prepares the
// filter prompt.
func NewModel(opts Options) *Model {
	sessions := opts.Sessions
	if sessions == nil {
		sessions = state.NewSessionStore()
	}
	detector := opts.Detector
	if detector == nil {
		detector = layout.StaticDetector(layout.DeviceForScreen(layout.ScreenDesktop))
	}
	bus := navigation.New(opts.Navigators...)
	m := &Model{
		autoScreen: opts.AutoScreen,
		page:       opts.Page,
		plain:      opts.Plain,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		detector:   detector,
		bus:        bus,
		assembler:  layout.New(bus),
		sessions:   sessions,
		dispatcher: dispatcher.New(sessions),
		backend:    opts.Watcher,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.filter = newFilterInput()
	m.registerHandlers()
	m.rebuild("init")
	return m
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "type to filter"
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(navigatedMsg{}):      m.handleNavigatedMsg,
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
	if m.autoScreen {
		m.rebuild("resize")
	}
	events.UI.Resize(m.width, m.height, string(m.header.Screen))
	if lvl := m.currentLevel(); lvl != nil {
		lvl.EnsureCursorVisible(m.maxVisibleItems())
	}
	return nil
}

// device resolves the client for this pass. With an automatic screen the
// known terminal width stands in for the viewport.
func (m *Model) device() layout.Device {
	if m.autoScreen && m.width > 0 {
		return layout.DeviceForWidth(m.width)
	}
	return m.detector.Detect()
}

// rebuild runs the full pipeline against the current snapshot and
// re-targets any open dropdowns at the new model.
func (m *Model) rebuild(reason string) {
	events.UI.Rebuild(reason)
	mapping := menu.Build(m.sessions.Snapshot())
	screen := layout.Classify(m.device())
	m.header = m.assembler.Header(mapping, screen, m.page, m.plain)

	entries := m.barEntries()
	if m.bar >= len(entries) {
		m.bar = len(entries) - 1
	}
	if m.bar < 0 {
		m.bar = 0
	}
	m.refreshStack(entries)
}

// refreshStack swaps fresh entries into open levels, closing any level
// whose owner no longer exists.
func (m *Model) refreshStack(bar []layout.RenderEntry) {
	parents := bar
	for i, lvl := range m.stack {
		idx := indexOfLevel(parents, lvl.ID)
		if idx < 0 || !parents[idx].HasChildren() {
			m.stack = m.stack[:i]
			break
		}
		if i == 0 {
			m.bar = idx
		}
		lvl.UpdateItems(children(parents[idx]))
		parents = lvl.Full
	}
	if len(m.stack) == 0 {
		m.closeFilter()
	}
}

// Header returns the header the bar currently shows.
func (m *Model) Header() layout.Header {
	return m.header
}

// Navigation exposes the bus commands are bound to.
func (m *Model) Navigation() *navigation.Bus {
	return m.bus
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}
