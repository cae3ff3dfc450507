package layout

import (
	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/atomicstack/header-menu/internal/navigation"
)

// leftSections is the fixed bar order shared by every screen class.
var leftSections = []menu.Section{
	menu.SectionMail,
	menu.SectionOrders,
	menu.SectionMarketing,
	menu.SectionProducts,
	menu.SectionContacts,
	menu.SectionHistory,
	menu.SectionReports,
	menu.SectionInbounds,
}

var (
	desktopRightSections   = []menu.Section{menu.SectionBalance, menu.SectionAccount}
	collapsedRightSections = []menu.Section{menu.SectionSupplies, menu.SectionAccount, menu.SectionBalance, menu.SectionHelp}
)

// slot is an entry as chosen by a layout, before binding.
type slot struct {
	entry    menu.Entry
	classes  []string
	template Template
}

// Assembler lays out a header mapping for a screen class and binds click
// commands to a navigator.
type Assembler struct {
	nav navigation.Navigator
}

// New returns an assembler whose commands notify nav.
func New(nav navigation.Navigator) *Assembler {
	return &Assembler{nav: nav}
}

// Assemble produces the render model. An unknown screen yields an empty
// model rather than an error so the host render pass is never interrupted.
func (a *Assembler) Assemble(m menu.Mapping, screen Screen, activePage string) RenderModel {
	left := slots(m.Lookup(leftSections...))
	var model RenderModel
	switch screen {
	case ScreenDesktop:
		model = a.desktop(left, slots(m.Lookup(desktopRightSections...)), activePage)
	case ScreenTablet:
		model = a.tablet(left, slots(m.Lookup(collapsedRightSections...)), activePage)
	case ScreenPhone:
		all := append(left, slots(m.Lookup(collapsedRightSections...))...)
		model = a.phone(all, activePage)
	default:
		events.Layout.UnknownScreen(string(screen))
		return RenderModel{}
	}
	events.Layout.Assemble(string(screen), activePage, len(model))
	return model
}

// Header assembles the model and wraps it with the screen's container
// classes. A plain header carries no menu.
func (a *Assembler) Header(m menu.Mapping, screen Screen, activePage string, plain bool) Header {
	h := Header{
		Screen:     screen,
		PanelClass: "header-panel-" + string(screen),
		LogoClass:  "app-logo " + string(screen),
		Plain:      plain,
	}
	if plain {
		h.Model = RenderModel{}
		return h
	}
	h.Model = a.Assemble(m, screen, activePage)
	return h
}

func (a *Assembler) desktop(left, right []slot, page string) RenderModel {
	for i := range right {
		right[i].classes = append(right[i].classes, ClassRightAligned)
		if right[i].entry.ID == menu.IDBalance {
			right[i].template = TemplateBalance
		}
		right[i].entry.Items = withoutSignInForm(right[i].entry.Items)
	}

	model := a.bind(left, page)
	model = append(model, RenderEntry{Separator: true})
	return append(model, a.bind(right, page)...)
}

func (a *Assembler) tablet(left, right []slot, page string) RenderModel {
	model := a.bind(left, page)
	return append(model,
		RenderEntry{Separator: true},
		RenderEntry{
			Icon:       IconBars,
			Classes:    []string{ClassMobileToggle, ClassRightAligned},
			Template:   TemplateCollapsiblePanel,
			Panel:      a.bind(collapse(right), page),
			PanelClass: "panel-menu-tablet tablet",
		},
	)
}

func (a *Assembler) phone(all []slot, page string) RenderModel {
	return RenderModel{
		{Separator: true},
		{
			Classes:    []string{ClassMobileToggle, ClassRightAligned},
			Template:   TemplateMobileToggle,
			Panel:      a.bind(collapse(all), page),
			PanelClass: "panel-menu-phone phone",
		},
	}
}

// slots drops absent entries and copies the rest so layouts can adjust
// them without touching the mapping.
func slots(entries []*menu.Entry) []slot {
	out := make([]slot, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		out = append(out, slot{entry: entry.Clone()})
	}
	return out
}

// collapse applies the adjustments shared by the hamburger layouts: the
// sign-in entry shows no sub-items and the balance amount moves into the
// label.
func collapse(in []slot) []slot {
	for i := range in {
		entry := &in[i].entry
		switch entry.ID {
		case menu.IDSignIn:
			entry.Items = nil
		case menu.IDBalance:
			if entry.Balance != "" {
				entry.Label = entry.Balance + " " + entry.Label
			}
		}
	}
	return in
}

func withoutSignInForm(items []menu.Entry) []menu.Entry {
	if items == nil {
		return nil
	}
	out := make([]menu.Entry, 0, len(items))
	for _, item := range items {
		if item.ID == menu.IDSignInForm {
			continue
		}
		out = append(out, item)
	}
	return out
}
