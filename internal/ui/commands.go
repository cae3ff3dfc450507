package ui

import (
	"fmt"

	"github.com/atomicstack/header-menu/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
)

// navigatedMsg reports a click command that has been executed.
type navigatedMsg struct {
	target string
}

func navigateCmd(command *layout.Command) tea.Cmd {
	return func() tea.Msg {
		command.Execute()
		return navigatedMsg{target: command.Target}
	}
}

// handleNavigatedMsg shows the target on the status line. Navigating to a
// bar root also makes it the highlighted page.
func (m *Model) handleNavigatedMsg(msg tea.Msg) tea.Cmd {
	nav, ok := msg.(navigatedMsg)
	if !ok {
		return nil
	}
	m.status = fmt.Sprintf("Navigate to id: %s", nav.target)
	for _, root := range m.header.Model.Roots() {
		if root.ID == nav.target {
			m.page = nav.target
			m.rebuild("navigate")
			break
		}
	}
	return nil
}
