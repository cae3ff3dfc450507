package menu

// Section names a fixed slot in the header mapping.
type Section string

const (
	SectionMail      Section = "mail"
	SectionOrders    Section = "orders"
	SectionMarketing Section = "marketing"
	SectionProducts  Section = "products"
	SectionContacts  Section = "contacts"
	SectionHistory   Section = "history"
	SectionReports   Section = "reports"
	SectionInbounds  Section = "inbounds"
	SectionSupplies  Section = "supplies"
	SectionBalance   Section = "balance"
	SectionAccount   Section = "account"
	SectionHelp      Section = "help"
)

// Sections returns every mapping key in header order.
func Sections() []Section {
	return []Section{
		SectionMail,
		SectionOrders,
		SectionMarketing,
		SectionProducts,
		SectionContacts,
		SectionHistory,
		SectionReports,
		SectionInbounds,
		SectionSupplies,
		SectionBalance,
		SectionAccount,
		SectionHelp,
	}
}

// NavType tells the renderer how a click should open its target.
type NavType string

const (
	NavNormal NavType = "normal"
	NavNewTab NavType = "newTab"
)

// LockIcon marks entries that require sign-in.
const LockIcon = "pi pi-lock"

// Entry ids the layout treats specially.
const (
	IDBalance    = "balance"
	IDSignIn     = "signIn"
	IDSignInForm = "signInform"
	IDLegalTerms = "legalTerms"
	// IDAccount stands in for the username when the session has none.
	IDAccount = "userName"
)

// Entry is a single menu item descriptor. Children never carry children of
// their own.
type Entry struct {
	ID           string  `json:"id"`
	Label        string  `json:"label,omitempty"`
	IsRestricted bool    `json:"isRestricted,omitempty"`
	Icon         string  `json:"icon,omitempty"`
	NavType      NavType `json:"navType,omitempty"`
	Balance      string  `json:"balance,omitempty"`
	Items        []Entry `json:"items,omitempty"`
}

// HasChildren reports whether clicking the entry opens a submenu.
func (e Entry) HasChildren() bool {
	return len(e.Items) > 0
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	dup := e
	dup.Items = CloneEntries(e.Items)
	return dup
}

// CloneEntries copies a child list, preserving nil.
func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	dup := make([]Entry, len(entries))
	for i, entry := range entries {
		dup[i] = entry.Clone()
	}
	return dup
}

// Mapping holds one optional entry per section. A nil field means the
// section is not shown.
type Mapping struct {
	Mail      *Entry `json:"mail"`
	Orders    *Entry `json:"orders"`
	Marketing *Entry `json:"marketing"`
	Products  *Entry `json:"products"`
	Contacts  *Entry `json:"contacts"`
	History   *Entry `json:"history"`
	Reports   *Entry `json:"reports"`
	Inbounds  *Entry `json:"inbounds"`
	Supplies  *Entry `json:"supplies"`
	Balance   *Entry `json:"balance"`
	Account   *Entry `json:"account"`
	Help      *Entry `json:"help"`
}

// Get returns the entry stored for section, or nil.
func (m Mapping) Get(section Section) *Entry {
	switch section {
	case SectionMail:
		return m.Mail
	case SectionOrders:
		return m.Orders
	case SectionMarketing:
		return m.Marketing
	case SectionProducts:
		return m.Products
	case SectionContacts:
		return m.Contacts
	case SectionHistory:
		return m.History
	case SectionReports:
		return m.Reports
	case SectionInbounds:
		return m.Inbounds
	case SectionSupplies:
		return m.Supplies
	case SectionBalance:
		return m.Balance
	case SectionAccount:
		return m.Account
	case SectionHelp:
		return m.Help
	default:
		return nil
	}
}

// Lookup collects the entries for the given sections in order, keeping nil
// slots so callers can decide how to drop them.
func (m Mapping) Lookup(sections ...Section) []*Entry {
	out := make([]*Entry, 0, len(sections))
	for _, section := range sections {
		out = append(out, m.Get(section))
	}
	return out
}

// Present lists the sections that have an entry.
func (m Mapping) Present() []Section {
	present := make([]Section, 0, 12)
	for _, section := range Sections() {
		if m.Get(section) != nil {
			present = append(present, section)
		}
	}
	return present
}
