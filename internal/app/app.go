package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/header-menu/internal/backend"
	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/atomicstack/header-menu/internal/navigation"
	"github.com/atomicstack/header-menu/internal/session"
	"github.com/atomicstack/header-menu/internal/state"
	"github.com/atomicstack/header-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// ScreenAuto defers the screen class to the detector.
const ScreenAuto = "auto"

// DefaultPollInterval is how often the session snapshot is re-checked.
const DefaultPollInterval = 1500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	SessionPath  string        `json:"sessionPath"`
	Screen       string        `json:"screen" validate:"oneof=auto desktop tablet phone"`
	Mobile       bool          `json:"mobile"`
	DeviceType   string        `json:"deviceType"`
	Page         string        `json:"page"`
	Width        int           `json:"width" validate:"gte=0"`
	Height       int           `json:"height" validate:"gte=0"`
	ShowFooter   bool          `json:"showFooter"`
	Verbose      bool          `json:"verbose"`
	Plain        bool          `json:"plain"`
	PollInterval time.Duration `json:"pollInterval" validate:"gt=0"`
	Format       string        `json:"format" validate:"oneof=json text"`
}

// AutoScreen reports whether the screen class follows the detector.
func (c Config) AutoScreen() bool {
	screen := strings.TrimSpace(c.Screen)
	return screen == "" || strings.EqualFold(screen, ScreenAuto)
}

// Detector resolves the device the header is laid out for. An explicit
// screen wins, then explicit device hints, then a fixed width, then the
// terminal.
func (c Config) Detector() (layout.Detector, error) {
	if !c.AutoScreen() {
		screen, err := layout.ParseScreen(c.Screen)
		if err != nil {
			return nil, err
		}
		return layout.StaticDetector(layout.DeviceForScreen(screen)), nil
	}
	if c.Mobile || strings.TrimSpace(c.DeviceType) != "" {
		return layout.StaticDetector(layout.Device{IsMobile: c.Mobile, Type: strings.TrimSpace(c.DeviceType)}), nil
	}
	if c.Width > 0 {
		return layout.StaticDetector(layout.DeviceForWidth(c.Width)), nil
	}
	return layout.NewTerminalDetector(), nil
}

// LoadSnapshot reads the configured session snapshot. Without a session
// path the header renders for a signed-out visitor.
func LoadSnapshot(path string) (session.State, error) {
	st, err := session.Load(path)
	if errors.Is(err, session.ErrNoSource) {
		return session.State{}, nil
	}
	if err != nil {
		events.Session.LoadError(path, err)
		return session.State{}, err
	}
	events.Session.Load(path, st.SignedIn())
	return st, nil
}

// BuildHeader runs one full pass: build the mapping, classify the device
// and assemble the header.
func BuildHeader(st session.State, detector layout.Detector, nav navigation.Navigator, page string, plain bool) layout.Header {
	mapping := menu.Build(st)
	screen := layout.Classify(detector.Detect())
	return layout.New(nav).Header(mapping, screen, page, plain)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	detector, err := cfg.Detector()
	if err != nil {
		return fmt.Errorf("resolve screen: %w", err)
	}
	snapshot, err := LoadSnapshot(cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	store := state.NewSessionStoreWith(snapshot)

	var watcher *backend.Watcher
	if strings.TrimSpace(cfg.SessionPath) != "" {
		interval := cfg.PollInterval
		if interval <= 0 {
			interval = DefaultPollInterval
		}
		watcher = backend.NewWatcher(cfg.SessionPath, interval)
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Options{
		Sessions:   store,
		Watcher:    watcher,
		Detector:   detector,
		AutoScreen: cfg.AutoScreen() && !cfg.Mobile && strings.TrimSpace(cfg.DeviceType) == "",
		Page:       cfg.Page,
		Plain:      cfg.Plain,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
