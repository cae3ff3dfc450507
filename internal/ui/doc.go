// Package ui contains the Bubble Tea program that previews the header in a
// terminal. The Model renders one bar (logo, left entries, separator, then
// the right-hand entries or the hamburger toggle) and opens dropdowns for
// entries with children.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, resizes, backend updates, completed
//     navigations).
//   - Navigation helpers (navigation.go) move the bar cursor, open and close
//     dropdown levels and execute click commands. Filter helpers (input.go)
//     keep text entry isolated from the event loop.
//
// State ownership:
//   - Dropdown state lives in internal/ui/state.Level, which tracks entries,
//     filtering, selection and viewport calculations.
//   - The session snapshot is held by internal/state and kept current by
//     the dispatcher. Every change rebuilds the mapping and the render model
//     so the bar always reflects the latest snapshot and screen class.
//   - Click commands notify a navigation.Bus; the last target is shown on
//     the status line.
//
// Backend interactions:
//   - A backend.Watcher streams snapshot changes; Update waits for those
//     events and hands them to applyBackendEvent, which updates the store
//     and rebuilds the header.
package ui
