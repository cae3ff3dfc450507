package menu

import (
	"strings"

	"github.com/atomicstack/header-menu/internal/currency"
	"github.com/atomicstack/header-menu/internal/logging"
	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/session"
)

// balancePages lists the pages on which the balance entry is offered.
var balancePages = []string{"mail", "orders", "products", "contacts", "history", "reports", "inbounds"}

// Build derives the header mapping from a session snapshot. It never
// modifies st and returns a freshly allocated mapping on every call.
func Build(st session.State) Mapping {
	m := Mapping{
		Mail:      &Entry{ID: "mail", Label: "Mail"},
		Orders:    ordersEntry(st),
		Marketing: marketingEntry(st),
		Products:  productsEntry(st),
		Contacts:  &Entry{ID: "contacts", Label: "Contacts"},
		History:   historyEntry(st),
		Reports:   reportsEntry(st),
		Inbounds:  inboundsEntry(st),
		Supplies:  suppliesEntry(st),
		Balance:   balanceEntry(st),
		Account:   accountEntry(st),
		Help:      &Entry{ID: "help", Label: "Help", NavType: NavNewTab},
	}
	if logging.TraceEnabled() {
		present := m.Present()
		sections := make([]string, len(present))
		for i, section := range present {
			sections[i] = string(section)
		}
		events.Menu.Build(st.SignedIn(), st.Page(), sections)
	}
	return m
}

// restricted builds an entry that is locked while signed out.
func restricted(id, label string, locked bool) Entry {
	entry := Entry{ID: id, Label: label, IsRestricted: locked}
	if locked {
		entry.Icon = LockIcon
	}
	return entry
}

func ordersEntry(st session.State) *Entry {
	entry := restricted("orders", "Orders", !st.SignedIn())
	return &entry
}

func reportsEntry(st session.State) *Entry {
	entry := restricted("reports", "Reports", !st.SignedIn())
	return &entry
}

func marketingEntry(st session.State) *Entry {
	if !st.ShowMarketing() {
		return nil
	}
	return &Entry{ID: "marketing", Label: "Marketing"}
}

func productsEntry(st session.State) *Entry {
	if !st.HasShipStationToken() {
		return nil
	}
	return &Entry{ID: "products", Label: "Products"}
}

func historyEntry(st session.State) *Entry {
	locked := !st.SignedIn()
	entry := restricted("history", "History", locked)

	candidates := []*Entry{
		ptr(restricted("searchPrintHistory", "Search Print History", locked)),
		{ID: "requestPostageRefund", Label: "Request a Postage Refund"},
		{ID: "fileInsuranceClaim", Label: "File an Insurance Claim"},
		ptr(restricted("createScanForm", "Create a SCAN Form", locked)),
		{ID: "scheduleUspsPickUp", Label: "Schedule a USPS Pickup"},
		nil,
	}
	if st.SignedIn() && st.FirstMileCarrier() == "usps" {
		candidates[len(candidates)-1] = &Entry{ID: "createContainerLabel", Label: "Create a Container Label"}
	}
	entry.Items = compact(candidates)
	return &entry
}

func inboundsEntry(st session.State) *Entry {
	if !st.SignedIn() || !st.HasConfiguredCarriers() {
		return nil
	}
	return &Entry{ID: "inbounds", Label: "Inbounds"}
}

func suppliesEntry(st session.State) *Entry {
	entry := restricted("supplies", "Supplies", !st.SignedIn())
	if st.BrandName() == "Endicia" {
		return &entry
	}
	entry.Items = []Entry{
		{ID: "netstamps", Label: "NetStamps"},
		{ID: "labels", Label: "Labels"},
		{ID: "shippingSupplies", Label: "Shipping Supplies"},
		{ID: "envelopes", Label: "Envelopes"},
		{ID: "freeUspsSupplies", Label: "Free USPS Supplies"},
	}
	return &entry
}

func balanceEntry(st session.State) *Entry {
	if !st.SignedIn() || !IsBalancePage(st.Page()) {
		return nil
	}
	return &Entry{
		ID:      IDBalance,
		Label:   "Balance",
		Balance: currency.USD().FormatValue(st.AmountAvailable()),
		Items: []Entry{
			{ID: "buyMore", Label: "Buy More"},
			{ID: "viewPurchaseHistory", Label: "View Purchase History"},
			{ID: "changePaymentMethod", Label: "Change Payment Method"},
		},
	}
}

// IsBalancePage reports whether page is one that shows the balance entry.
// The comparison ignores case.
func IsBalancePage(page string) bool {
	for _, candidate := range balancePages {
		if strings.EqualFold(page, candidate) {
			return true
		}
	}
	return false
}

func accountEntry(st session.State) *Entry {
	legal := &Entry{ID: IDLegalTerms, Label: "Legal Terms", NavType: NavNewTab}
	if !st.SignedIn() {
		return &Entry{
			ID:    IDSignIn,
			Label: "Sign In",
			Items: compact([]*Entry{{ID: IDSignInForm}, legal}),
		}
	}

	id, label := st.Username(), st.Username()
	if strings.TrimSpace(id) == "" {
		id, label = IDAccount, "Account"
	}
	var manage *Entry
	if st.Page() != "account" {
		manage = &Entry{ID: "manageAccount", Label: "Manage Account"}
	}
	return &Entry{
		ID:    id,
		Label: label,
		Items: compact([]*Entry{manage, legal, {ID: "signOut", Label: "Sign Out"}}),
	}
}

// compact drops absent candidates.
func compact(candidates []*Entry) []Entry {
	out := make([]Entry, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		out = append(out, *candidate)
	}
	return out
}

func ptr(e Entry) *Entry {
	return &e
}
