package layout

import "github.com/atomicstack/header-menu/internal/menu"

// bind turns layout slots into render entries: it highlights the active
// page, resolves templates and attaches click commands. Leaves get a
// command; parents do not, and each of their children does.
func (a *Assembler) bind(in []slot, page string) RenderModel {
	out := make(RenderModel, 0, len(in))
	for _, s := range in {
		entry := s.entry
		re := RenderEntry{
			ID:           entry.ID,
			Label:        entry.Label,
			IsRestricted: entry.IsRestricted,
			Icon:         entry.Icon,
			NavType:      entry.NavType,
			Balance:      entry.Balance,
			Classes:      append([]string(nil), s.classes...),
			Template:     s.template,
		}
		if page != "" && entry.ID == page {
			re.Active = true
			re.Classes = append(re.Classes, ClassActive)
		}
		if !entry.HasChildren() {
			re.Command = a.command(entry.ID)
		} else {
			re.Items = a.bindChildren(entry.Items)
		}
		out = append(out, re)
	}
	return out
}

func (a *Assembler) bindChildren(items []menu.Entry) []RenderEntry {
	out := make([]RenderEntry, 0, len(items))
	for _, item := range items {
		child := RenderEntry{
			ID:           item.ID,
			Label:        item.Label,
			IsRestricted: item.IsRestricted,
			Icon:         item.Icon,
			NavType:      item.NavType,
			Balance:      item.Balance,
			Template:     TemplateDefault,
			Command:      a.command(item.ID),
		}
		if item.ID == menu.IDSignInForm {
			child.Template = TemplateSignInPlaceholder
		}
		out = append(out, child)
	}
	return out
}

func (a *Assembler) command(target string) *Command {
	return &Command{Target: target, nav: a.nav}
}
