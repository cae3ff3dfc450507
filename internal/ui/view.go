package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/header-menu/internal/format/tree"
	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	logoText      = "◆ header"
	lockGlyph     = "🔒"
	newTabGlyph   = "↗"
	submenuGlyph  = "▾"
	panelGlyph    = "☰"
	closeGlyph    = "✕"
	separatorText = "│"
	barGap        = "  "
	indicator     = "›"
	footerText    = "←/→ move · enter open · esc back · type to filter · ctrl+c quit"
)

// View renders the bar, the open dropdown, the status line and the
// optional footer.
func (m *Model) View() string {
	lines := []string{m.barView()}
	if lvl := m.currentLevel(); lvl != nil {
		lines = append(lines, m.dropdownView(lvl)...)
	}
	if line := m.statusView(); line != "" {
		lines = append(lines, line)
	}
	if m.showFooter {
		lines = append(lines, render(styles.Footer, footerText))
	}
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) barView() string {
	logo := render(styles.Logo, logoText)
	if m.header.Plain {
		return logo
	}
	var left, right []string
	inRight := false
	idx := 0
	for _, entry := range m.header.Model {
		if entry.Separator {
			inRight = true
			continue
		}
		cell := m.barCell(entry, idx == m.bar)
		idx++
		if inRight {
			right = append(right, cell)
		} else {
			left = append(left, cell)
		}
	}
	leftText := strings.Join(append([]string{logo}, left...), barGap)
	if len(right) == 0 {
		return leftText
	}
	rightText := strings.Join(right, barGap)
	gap := m.width - lipgloss.Width(leftText) - lipgloss.Width(rightText)
	if m.width <= 0 || gap < len(barGap) {
		return leftText + barGap + render(styles.Separator, separatorText) + barGap + rightText
	}
	return leftText + strings.Repeat(" ", gap) + rightText
}

func (m *Model) barCell(entry layout.RenderEntry, selected bool) string {
	var text string
	switch entry.Template {
	case layout.TemplateCollapsiblePanel, layout.TemplateMobileToggle:
		text = panelGlyph
		if lvl := m.currentLevel(); selected && lvl != nil {
			text = closeGlyph
		}
	default:
		text = entryText(entry)
		if len(entry.Items) > 0 {
			text += " " + submenuGlyph
		}
	}
	switch {
	case selected:
		return render(styles.BarSelected, text)
	case entry.Active:
		return render(styles.BarActive, text)
	case entry.Template == layout.TemplateBalance:
		return render(styles.Balance, text)
	case entry.Template == layout.TemplateCollapsiblePanel, entry.Template == layout.TemplateMobileToggle:
		return render(styles.Toggle, text)
	case entry.IsRestricted:
		return render(styles.Restricted, text)
	}
	return render(styles.BarItem, text)
}

// entryText is the label plus the glyphs for a lock or a new tab.
func entryText(entry layout.RenderEntry) string {
	text := tree.Label(entry)
	if entry.IsRestricted {
		text += " " + lockGlyph
	}
	if entry.NavType == menu.NavNewTab {
		text += " " + newTabGlyph
	}
	return text
}

func (m *Model) dropdownView(lvl *level) []string {
	titles := make([]string, 0, len(m.stack))
	for _, open := range m.stack {
		titles = append(titles, open.Title)
	}
	lines := []string{render(styles.DropdownTitle, strings.Join(titles, " › "))}
	items, offset := lvl.Visible(m.maxVisibleItems())
	if len(items) == 0 {
		lines = append(lines, render(styles.Info, "  no matches"))
	}
	for i, item := range items {
		lines = append(lines, itemLine(item, offset+i == lvl.Cursor))
	}
	lines = append(lines, m.filter.View())
	return lines
}

func itemLine(item layout.RenderEntry, selected bool) string {
	text := entryText(item)
	if item.HasChildren() {
		text += " " + indicator
	}
	if selected {
		return render(styles.SelectedIndicator, indicator+" ") + render(styles.SelectedItem, text)
	}
	style := styles.Item
	switch {
	case item.Template == layout.TemplateSignInPlaceholder:
		style = styles.Placeholder
	case item.IsRestricted:
		style = styles.Restricted
	case item.Active:
		style = styles.BarActive
	}
	return render(styles.ItemIndicator, "  ") + render(style, text)
}

func (m *Model) statusView() string {
	switch {
	case m.errMsg != "":
		return render(styles.Error, m.errMsg)
	case m.backendLastErr != "":
		return render(styles.Error, "session: "+m.backendLastErr)
	case m.status != "":
		return render(styles.Status, m.status)
	case m.verbose:
		return render(styles.Info, m.summary())
	}
	return ""
}

func (m *Model) summary() string {
	who := "signed out"
	if snapshot := m.sessions.Snapshot(); snapshot.SignedIn() {
		who = "signed in as " + snapshot.Username()
	}
	return fmt.Sprintf("%s · %s · %dx%d", m.header.Screen, who, m.width, m.height)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
