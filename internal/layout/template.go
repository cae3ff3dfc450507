package layout

import "fmt"

// Template selects how the renderer draws an entry.
type Template int

const (
	TemplateDefault Template = iota
	TemplateBalance
	TemplateSignInPlaceholder
	TemplateMobileToggle
	TemplateCollapsiblePanel
)

var templateNames = map[Template]string{
	TemplateDefault:           "default",
	TemplateBalance:           "balance",
	TemplateSignInPlaceholder: "signInPlaceholder",
	TemplateMobileToggle:      "mobileToggle",
	TemplateCollapsiblePanel:  "collapsiblePanel",
}

func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("template(%d)", int(t))
}

func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
