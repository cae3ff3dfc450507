package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/atomicstack/header-menu/internal/format/tree"
	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/navigation"
)

// Output formats accepted by Render.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Render writes one header pass to w as indented JSON or a text outline.
func Render(w io.Writer, cfg Config) error {
	detector, err := cfg.Detector()
	if err != nil {
		return fmt.Errorf("resolve screen: %w", err)
	}
	snapshot, err := LoadSnapshot(cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	header := BuildHeader(snapshot, detector, navigation.New(), cfg.Page, cfg.Plain)
	events.App.Render(cfg.Format, string(header.Screen))

	switch cfg.Format {
	case FormatText:
		_, err = io.WriteString(w, tree.Render(header))
	case FormatJSON, "":
		var data []byte
		data, err = json.MarshalIndent(header, "", "  ")
		if err == nil {
			_, err = w.Write(append(data, '\n'))
		}
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
