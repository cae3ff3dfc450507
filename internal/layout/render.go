package layout

import (
	"encoding/json"
	"strings"

	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/atomicstack/header-menu/internal/navigation"
)

// Class names applied by the layouts.
const (
	ClassActive       = "p-menuitem-active"
	ClassRightAligned = "right-aligned-item"
	ClassMobileToggle = "mobile-toggle-button"
)

// IconBars is the hamburger icon of the collapsed layouts.
const IconBars = "pi pi-bars"

// Command is the click binding of a leaf entry.
type Command struct {
	Target string
	nav    navigation.Navigator
}

// Execute notifies the navigator. A command without a navigator is inert.
func (c *Command) Execute() {
	if c == nil || c.nav == nil {
		return
	}
	c.nav.Navigate(c.Target)
}

func (c *Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Navigate string `json:"navigate"`
	}{Navigate: c.Target})
}

// RenderEntry is an entry decorated for the renderer.
type RenderEntry struct {
	ID           string        `json:"id,omitempty"`
	Label        string        `json:"label,omitempty"`
	IsRestricted bool          `json:"isRestricted,omitempty"`
	Icon         string        `json:"icon,omitempty"`
	NavType      menu.NavType  `json:"navType,omitempty"`
	Balance      string        `json:"balance,omitempty"`
	Classes      []string      `json:"classes,omitempty"`
	Active       bool          `json:"active,omitempty"`
	Template     Template      `json:"template"`
	Command      *Command      `json:"command,omitempty"`
	Items        []RenderEntry `json:"items,omitempty"`
	Separator    bool          `json:"separator,omitempty"`
	Panel        []RenderEntry `json:"panel,omitempty"`
	PanelClass   string        `json:"panelClass,omitempty"`
}

// ClassName joins the entry classes the way a class attribute expects.
func (e RenderEntry) ClassName() string {
	return strings.Join(e.Classes, " ")
}

// HasChildren reports whether the entry opens a submenu or panel.
func (e RenderEntry) HasChildren() bool {
	return len(e.Items) > 0 || len(e.Panel) > 0
}

// RenderModel is the ordered list of root entries handed to a renderer.
type RenderModel []RenderEntry

// Roots returns the root entries a user can reach without opening a child
// menu: the bar's own roots plus the roots of any collapsed panel.
// Separators are skipped.
func (m RenderModel) Roots() []RenderEntry {
	var roots []RenderEntry
	for _, entry := range m {
		if entry.Separator {
			continue
		}
		if len(entry.Panel) > 0 {
			roots = append(roots, RenderModel(entry.Panel).Roots()...)
			continue
		}
		roots = append(roots, entry)
	}
	return roots
}

// Walk visits every non-separator entry depth first, including panel
// contents and children.
func (m RenderModel) Walk(fn func(RenderEntry)) {
	for _, entry := range m {
		if entry.Separator {
			continue
		}
		fn(entry)
		RenderModel(entry.Panel).Walk(fn)
		RenderModel(entry.Items).Walk(fn)
	}
}

// Find returns the first entry with id, searching panels and children.
func (m RenderModel) Find(id string) (RenderEntry, bool) {
	var (
		found RenderEntry
		ok    bool
	)
	m.Walk(func(e RenderEntry) {
		if !ok && e.ID == id {
			found, ok = e, true
		}
	})
	return found, ok
}

// Header wraps a render model with the container classes of its screen.
type Header struct {
	Screen     Screen      `json:"screen"`
	PanelClass string      `json:"panelClass"`
	LogoClass  string      `json:"logoClass"`
	Plain      bool        `json:"plain,omitempty"`
	Model      RenderModel `json:"model"`
}
