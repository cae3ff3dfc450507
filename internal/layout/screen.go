package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/header-menu/internal/logging/events"
	"golang.org/x/term"
)

// Screen is the size class a header is laid out for.
type Screen string

const (
	ScreenDesktop Screen = "desktop"
	ScreenTablet  Screen = "tablet"
	ScreenPhone   Screen = "phone"
)

// ErrUnknownScreen reports a classification that no layout handles.
var ErrUnknownScreen = errors.New("unknown screen classification")

// ParseScreen resolves a screen name, ignoring case and surrounding space.
func ParseScreen(name string) (Screen, error) {
	switch Screen(strings.ToLower(strings.TrimSpace(name))) {
	case ScreenDesktop:
		return ScreenDesktop, nil
	case ScreenTablet:
		return ScreenTablet, nil
	case ScreenPhone:
		return ScreenPhone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// DeviceTypeMobile is the device-type signal reported by handsets.
const DeviceTypeMobile = "mobile"

// Device is what the host knows about the client.
type Device struct {
	IsMobile bool   `json:"isMobile"`
	Type     string `json:"deviceType"`
}

// Classify maps a device to its screen class.
func Classify(d Device) Screen {
	screen := ScreenDesktop
	if d.IsMobile {
		if d.Type == DeviceTypeMobile {
			screen = ScreenPhone
		} else {
			screen = ScreenTablet
		}
	}
	events.Layout.Classify(d.IsMobile, d.Type, string(screen))
	return screen
}

// Detector reports the current device. Implementations are consulted on
// every render pass.
type Detector interface {
	Detect() Device
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() Device

func (f DetectorFunc) Detect() Device {
	return f()
}

// StaticDetector always reports the same device.
type StaticDetector Device

func (s StaticDetector) Detect() Device {
	return Device(s)
}

// DeviceForScreen returns a device that classifies as screen.
func DeviceForScreen(screen Screen) Device {
	switch screen {
	case ScreenPhone:
		return Device{IsMobile: true, Type: DeviceTypeMobile}
	case ScreenTablet:
		return Device{IsMobile: true, Type: "tablet"}
	default:
		return Device{Type: "browser"}
	}
}

// Column thresholds used when the terminal width stands in for the viewport.
const (
	PhoneMaxWidth  = 59
	TabletMaxWidth = 99
)

// DeviceForWidth treats a terminal width as a viewport.
func DeviceForWidth(width int) Device {
	switch {
	case width <= 0:
		return DeviceForScreen(ScreenDesktop)
	case width <= PhoneMaxWidth:
		return DeviceForScreen(ScreenPhone)
	case width <= TabletMaxWidth:
		return DeviceForScreen(ScreenTablet)
	default:
		return DeviceForScreen(ScreenDesktop)
	}
}

// TerminalDetector sizes the device from a terminal file descriptor. When
// the descriptor is not a terminal it reports a desktop.
type TerminalDetector struct {
	Fd int
}

// NewTerminalDetector watches stdout.
func NewTerminalDetector() TerminalDetector {
	return TerminalDetector{Fd: int(os.Stdout.Fd())}
}

func (d TerminalDetector) Detect() Device {
	if d.Fd < 0 || !term.IsTerminal(d.Fd) {
		return DeviceForScreen(ScreenDesktop)
	}
	width, _, err := term.GetSize(d.Fd)
	if err != nil {
		return DeviceForScreen(ScreenDesktop)
	}
	return DeviceForWidth(width)
}
