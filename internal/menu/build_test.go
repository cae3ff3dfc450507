package menu

import (
	"reflect"
	"testing"

	"github.com/atomicstack/header-menu/internal/session"
)

func signedIn(page string) session.State {
	carriers := []session.Carrier{"ups"}
	return session.State{
		IsSignedIn: true,
		Balance:    &session.Balance{AmountAvailable: 1234.5},
		Settings:   &session.Settings{Page: page},
		AccountInfo: &session.AccountInfo{
			CustomerDetails:    &session.CustomerDetails{Username: "jdoe"},
			Globalpost:         &session.Globalpost{FirstMileCarrier: "usps"},
			ConfiguredCarriers: &carriers,
		},
		Brand: &session.Brand{BrandName: "Stamps"},
	}
}

func childIDs(e *Entry) []string {
	ids := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestBuildSignedOut(t *testing.T) {
	for _, flags := range []session.Settings{
		{},
		{ShowMarketing: true},
		{HasShipStationToken: true},
		{ShowMarketing: true, HasShipStationToken: true, Page: "mail"},
	} {
		settings := flags
		st := session.State{Settings: &settings, Balance: &session.Balance{AmountAvailable: 50}}
		m := Build(st)

		if (m.Marketing != nil) != settings.ShowMarketing {
			t.Fatalf("marketing presence mismatch for %+v", settings)
		}
		if (m.Products != nil) != settings.HasShipStationToken {
			t.Fatalf("products presence mismatch for %+v", settings)
		}
		if m.Balance != nil {
			t.Fatalf("balance must be absent when signed out")
		}
		if m.Inbounds != nil {
			t.Fatalf("inbounds must be absent when signed out")
		}
		for _, entry := range []*Entry{m.Orders, m.Reports, m.Supplies, m.History} {
			if !entry.IsRestricted || entry.Icon != LockIcon {
				t.Fatalf("expected %s to be locked, got %+v", entry.ID, entry)
			}
		}
	}
}

func TestBuildSignedInUnlocksEntries(t *testing.T) {
	m := Build(signedIn("mail"))
	for _, entry := range []*Entry{m.Orders, m.Reports, m.Supplies, m.History} {
		if entry.IsRestricted || entry.Icon != "" {
			t.Fatalf("expected %s unlocked, got %+v", entry.ID, entry)
		}
	}
	if m.Inbounds == nil {
		t.Fatalf("expected inbounds with configured carriers")
	}
}

func TestBuildBalance(t *testing.T) {
	m := Build(signedIn("mail"))
	if m.Balance == nil {
		t.Fatalf("expected balance on mail page")
	}
	if m.Balance.Balance != "$1,234.50" {
		t.Fatalf("expected $1,234.50, got %q", m.Balance.Balance)
	}
	want := []string{"buyMore", "viewPurchaseHistory", "changePaymentMethod"}
	if got := childIDs(m.Balance); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected balance children %v", got)
	}

	st := signedIn("mail")
	st.Balance = nil
	if got := Build(st).Balance.Balance; got != "$0.00" {
		t.Fatalf("expected $0.00 for missing balance, got %q", got)
	}
	st.Balance = &session.Balance{AmountAvailable: "lots"}
	if got := Build(st).Balance.Balance; got != "$0.00" {
		t.Fatalf("expected $0.00 for non-numeric balance, got %q", got)
	}
}

func TestBuildBalancePageAllowList(t *testing.T) {
	for _, page := range []string{"mail", "orders", "products", "contacts", "history", "reports", "inbounds", "Orders"} {
		if Build(signedIn(page)).Balance == nil {
			t.Fatalf("expected balance on page %q", page)
		}
	}
	for _, page := range []string{"", "account", "marketing", "supplies", "email"} {
		if Build(signedIn(page)).Balance != nil {
			t.Fatalf("expected no balance on page %q", page)
		}
	}
	st := signedIn("mail")
	st.Settings = nil
	if Build(st).Balance != nil {
		t.Fatalf("expected no balance without settings")
	}
}

func TestBuildHistoryContainerLabel(t *testing.T) {
	base := []string{"searchPrintHistory", "requestPostageRefund", "fileInsuranceClaim", "createScanForm", "scheduleUspsPickUp"}

	got := childIDs(Build(signedIn("mail")).History)
	if want := append(append([]string{}, base...), "createContainerLabel"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected container label for usps carrier, got %v", got)
	}

	other := signedIn("mail")
	other.AccountInfo.Globalpost.FirstMileCarrier = "dhl"
	if got := childIDs(Build(other).History); !reflect.DeepEqual(got, base) {
		t.Fatalf("expected no container label for dhl, got %v", got)
	}

	signedOut := signedIn("mail")
	signedOut.IsSignedIn = false
	history := Build(signedOut).History
	if got := childIDs(history); !reflect.DeepEqual(got, base) {
		t.Fatalf("expected no container label when signed out, got %v", got)
	}
	for _, item := range history.Items {
		if item.ID == "" {
			t.Fatalf("history children must not contain placeholders")
		}
	}
	if !history.Items[0].IsRestricted || !history.Items[3].IsRestricted {
		t.Fatalf("expected print history and scan form restricted")
	}
	if history.Items[1].IsRestricted || history.Items[4].IsRestricted {
		t.Fatalf("expected refund and pickup unrestricted")
	}

	noAccount := session.State{IsSignedIn: true}
	if got := childIDs(Build(noAccount).History); !reflect.DeepEqual(got, base) {
		t.Fatalf("expected base history without account info, got %v", got)
	}
}

func TestBuildInboundsNeedsCarrierList(t *testing.T) {
	st := signedIn("mail")
	st.AccountInfo.ConfiguredCarriers = nil
	if Build(st).Inbounds != nil {
		t.Fatalf("expected no inbounds without carrier list")
	}
	empty := []session.Carrier{}
	st.AccountInfo.ConfiguredCarriers = &empty
	if Build(st).Inbounds == nil {
		t.Fatalf("expected inbounds with an empty carrier list")
	}
}

func TestBuildSuppliesBrand(t *testing.T) {
	st := signedIn("mail")
	if got := Build(st).Supplies; len(got.Items) != 5 {
		t.Fatalf("expected 5 supply children, got %d", len(got.Items))
	}
	st.Brand = &session.Brand{BrandName: "Endicia"}
	if got := Build(st).Supplies; got.Items != nil {
		t.Fatalf("expected no supply children for Endicia, got %v", got.Items)
	}
}

func TestBuildAccountVariants(t *testing.T) {
	out := Build(session.State{})
	if out.Account.ID != IDSignIn || out.Account.Label != "Sign In" {
		t.Fatalf("expected sign-in entry, got %+v", out.Account)
	}
	if got := childIDs(out.Account); !reflect.DeepEqual(got, []string{IDSignInForm, IDLegalTerms}) {
		t.Fatalf("unexpected sign-in children %v", got)
	}
	if out.Account.Items[1].NavType != NavNewTab {
		t.Fatalf("legal terms must open in a new tab")
	}

	in := Build(signedIn("account"))
	if in.Account.ID != "jdoe" || in.Account.Label != "jdoe" {
		t.Fatalf("expected username entry, got %+v", in.Account)
	}
	if got := childIDs(in.Account); !reflect.DeepEqual(got, []string{IDLegalTerms, "signOut"}) {
		t.Fatalf("expected manage account omitted on account page, got %v", got)
	}

	mail := Build(signedIn("mail"))
	if got := childIDs(mail.Account); !reflect.DeepEqual(got, []string{"manageAccount", IDLegalTerms, "signOut"}) {
		t.Fatalf("unexpected account children %v", got)
	}

	anonymous := Build(session.State{IsSignedIn: true, AccountInfo: &session.AccountInfo{CustomerDetails: &session.CustomerDetails{}}})
	if anonymous.Account.ID != IDAccount || anonymous.Account.Label != "Account" {
		t.Fatalf("expected fallback account entry without a username, got %+v", anonymous.Account)
	}
	if got := childIDs(anonymous.Account); !reflect.DeepEqual(got, []string{"manageAccount", IDLegalTerms, "signOut"}) {
		t.Fatalf("unexpected fallback account children %v", got)
	}
	if bare := Build(session.State{IsSignedIn: true}); bare.Account.ID != IDAccount {
		t.Fatalf("expected fallback id without account info, got %q", bare.Account.ID)
	}
}

func TestBuildStaticEntries(t *testing.T) {
	m := Build(session.State{})
	if m.Mail.ID != "mail" || m.Contacts.ID != "contacts" {
		t.Fatalf("unexpected static entries %+v %+v", m.Mail, m.Contacts)
	}
	if m.Help.NavType != NavNewTab {
		t.Fatalf("help must open in a new tab")
	}
}

func TestBuildIsIdempotentAndDoesNotMutate(t *testing.T) {
	st := signedIn("orders")
	before := signedIn("orders")
	first := Build(st)
	second := Build(st)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected structurally equal mappings")
	}
	if first.History == second.History {
		t.Fatalf("expected fresh allocations per build")
	}
	if !reflect.DeepEqual(st, before) {
		t.Fatalf("build mutated its input")
	}
}

func TestMappingLookupAndPresent(t *testing.T) {
	m := Build(session.State{})
	got := m.Lookup(SectionMail, SectionBalance, SectionHelp)
	if len(got) != 3 || got[0] != m.Mail || got[1] != nil || got[2] != m.Help {
		t.Fatalf("unexpected lookup result %v", got)
	}
	present := m.Present()
	want := []Section{SectionMail, SectionOrders, SectionContacts, SectionHistory, SectionReports, SectionSupplies, SectionAccount, SectionHelp}
	if !reflect.DeepEqual(present, want) {
		t.Fatalf("unexpected present sections %v", present)
	}
	if m.Get(Section("unknown")) != nil {
		t.Fatalf("expected nil for unknown section")
	}
}

func TestEntryClone(t *testing.T) {
	orig := Entry{ID: "a", Items: []Entry{{ID: "b"}}}
	dup := orig.Clone()
	dup.Items[0].ID = "changed"
	if orig.Items[0].ID != "b" {
		t.Fatalf("clone shares child storage")
	}
	if CloneEntries(nil) != nil {
		t.Fatalf("expected nil clone of nil")
	}
}
