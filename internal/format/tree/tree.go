// Package tree prints a header as an indented, column-aligned outline.
package tree

import (
	"fmt"
	"strings"

	"github.com/atomicstack/header-menu/internal/format/table"
	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/menu"
)

const indent = "  "

// Render writes the header outline: one line naming the screen and its
// container classes, then one row per entry.
func Render(h layout.Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "screen: %s  panel: %s  logo: %s\n", h.Screen, h.PanelClass, h.LogoClass)
	if h.Plain {
		b.WriteString("(plain header)\n")
		return b.String()
	}
	if len(h.Model) == 0 {
		b.WriteString("(empty)\n")
		return b.String()
	}
	tbl := table.New()
	rows(tbl, h.Model, 0)
	b.WriteString(tbl.String())
	return b.String()
}

func rows(tbl *table.Table, entries []layout.RenderEntry, depth int) {
	for _, entry := range entries {
		if entry.Separator {
			tbl.Row(strings.Repeat(indent, depth) + "---")
			continue
		}
		tbl.Row(
			strings.Repeat(indent, depth)+Label(entry),
			entry.ID,
			entry.Template.String(),
			binding(entry),
			strings.Join(flags(entry), ","),
		)
		rows(tbl, entry.Panel, depth+1)
		rows(tbl, entry.Items, depth+1)
	}
}

// Label is the text an entry is displayed with: the balance template leads
// with the amount, and untitled entries fall back to their icon or role.
func Label(entry layout.RenderEntry) string {
	switch {
	case entry.Template == layout.TemplateBalance && entry.Balance != "":
		return entry.Balance + " " + entry.Label
	case entry.Label != "":
		return entry.Label
	case entry.Template == layout.TemplateSignInPlaceholder:
		return "[sign-in form]"
	case entry.Icon != "":
		return "[" + entry.Icon + "]"
	case entry.Template == layout.TemplateMobileToggle:
		return "[menu]"
	}
	return "[" + entry.ID + "]"
}

func binding(entry layout.RenderEntry) string {
	switch {
	case entry.Command != nil:
		return "-> " + entry.Command.Target
	case len(entry.Panel) > 0:
		return "panel " + entry.PanelClass
	case len(entry.Items) > 0:
		return fmt.Sprintf("%d items", len(entry.Items))
	}
	return ""
}

func flags(entry layout.RenderEntry) []string {
	var out []string
	if entry.Active {
		out = append(out, "active")
	}
	if entry.IsRestricted {
		out = append(out, "locked")
	}
	if entry.NavType == menu.NavNewTab {
		out = append(out, "new-tab")
	}
	for _, class := range entry.Classes {
		if class == layout.ClassRightAligned {
			out = append(out, "right")
		}
	}
	return out
}
