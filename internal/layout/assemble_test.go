package layout

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/header-menu/internal/menu"
	"github.com/atomicstack/header-menu/internal/navigation"
	"github.com/atomicstack/header-menu/internal/session"
)

var allScreens = []Screen{ScreenDesktop, ScreenTablet, ScreenPhone}

func signedInState(page string) session.State {
	carriers := []session.Carrier{}
	return session.State{
		IsSignedIn: true,
		Balance:    &session.Balance{AmountAvailable: 1234.5},
		Settings:   &session.Settings{Page: page, ShowMarketing: true, HasShipStationToken: true},
		AccountInfo: &session.AccountInfo{
			CustomerDetails:    &session.CustomerDetails{Username: "jdoe"},
			ConfiguredCarriers: &carriers,
		},
	}
}

func rootIDs(entries []RenderEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestEveryScreenBindsLeavesAndParents(t *testing.T) {
	states := []session.State{signedInState("mail"), {}, signedInState("account")}
	a := New(navigation.New())
	for _, st := range states {
		m := menu.Build(st)
		for _, screen := range allScreens {
			model := a.Assemble(m, screen, "orders")
			if len(model) == 0 {
				t.Fatalf("%s: expected a non-empty model", screen)
			}
			model.Walk(func(e RenderEntry) {
				if e.HasChildren() && e.Command != nil {
					t.Fatalf("%s: parent %q must not carry a command", screen, e.ID)
				}
				if !e.HasChildren() && e.Command == nil {
					t.Fatalf("%s: leaf %q must carry a command", screen, e.ID)
				}
				for _, child := range e.Items {
					if len(child.Items) > 0 {
						t.Fatalf("%s: child %q has nested children", screen, child.ID)
					}
				}
			})
		}
	}
}

func TestActiveHighlightAcrossScreens(t *testing.T) {
	a := New(nil)
	m := menu.Build(signedInState("orders"))
	for _, screen := range allScreens {
		model := a.Assemble(m, screen, "orders")
		var active []string
		for _, root := range model.Roots() {
			if root.Active {
				active = append(active, root.ID)
				if !strings.Contains(root.ClassName(), ClassActive) {
					t.Fatalf("%s: active root missing class, got %q", screen, root.ClassName())
				}
			} else if strings.Contains(root.ClassName(), ClassActive) {
				t.Fatalf("%s: inactive root %q has active class", screen, root.ID)
			}
		}
		if !reflect.DeepEqual(active, []string{"orders"}) {
			t.Fatalf("%s: expected only orders active, got %v", screen, active)
		}
	}
}

func TestDesktopLayout(t *testing.T) {
	a := New(nil)
	model := a.Assemble(menu.Build(signedInState("mail")), ScreenDesktop, "mail")

	want := []string{"mail", "orders", "marketing", "products", "contacts", "history", "reports", "inbounds", "", "balance", "jdoe"}
	if got := rootIDs(model); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected desktop roots %v", got)
	}
	if !model[8].Separator {
		t.Fatalf("expected separator before right-hand entries")
	}
	balance := model[9]
	if balance.Template != TemplateBalance || balance.Balance != "$1,234.50" || balance.Label != "Balance" {
		t.Fatalf("unexpected balance entry %+v", balance)
	}
	for _, right := range model[9:] {
		if right.Classes[0] != ClassRightAligned {
			t.Fatalf("expected right-aligned class on %q, got %v", right.ID, right.Classes)
		}
	}
	if model[0].Template != TemplateDefault {
		t.Fatalf("expected default template on left entries")
	}
}

func TestDesktopStripsSignInForm(t *testing.T) {
	model := New(nil).Assemble(menu.Build(session.State{}), ScreenDesktop, "mail")
	signIn, ok := model.Find(menu.IDSignIn)
	if !ok {
		t.Fatalf("expected sign-in entry")
	}
	if got := rootIDs(signIn.Items); !reflect.DeepEqual(got, []string{menu.IDLegalTerms}) {
		t.Fatalf("expected only legal terms under sign-in, got %v", got)
	}
	if signIn.Command != nil {
		t.Fatalf("sign-in keeps children on desktop so it must not carry a command")
	}
	if _, ok := model.Find("balance"); ok {
		t.Fatalf("balance must not appear when signed out")
	}
}

func TestTabletLayout(t *testing.T) {
	model := New(nil).Assemble(menu.Build(signedInState("mail")), ScreenTablet, "mail")
	if len(model) != 10 {
		t.Fatalf("expected 8 left roots + separator + toggle, got %d", len(model))
	}
	if !model[8].Separator {
		t.Fatalf("expected separator before toggle")
	}
	toggle := model[9]
	if toggle.Label != "" || toggle.Icon != IconBars || toggle.Template != TemplateCollapsiblePanel {
		t.Fatalf("unexpected toggle %+v", toggle)
	}
	if toggle.ClassName() != ClassMobileToggle+" "+ClassRightAligned {
		t.Fatalf("unexpected toggle classes %q", toggle.ClassName())
	}
	if toggle.PanelClass != "panel-menu-tablet tablet" {
		t.Fatalf("unexpected panel class %q", toggle.PanelClass)
	}
	if got := rootIDs(toggle.Panel); !reflect.DeepEqual(got, []string{"supplies", "jdoe", "balance", "help"}) {
		t.Fatalf("unexpected panel roots %v", got)
	}
	balance := toggle.Panel[2]
	if balance.Label != "$1,234.50 Balance" || balance.Template != TemplateDefault {
		t.Fatalf("expected amount folded into label, got %+v", balance)
	}
	if toggle.Command != nil {
		t.Fatalf("toggle opens a panel and must not carry a command")
	}
}

func TestCollapsedLayoutsDropSignInChildren(t *testing.T) {
	for _, screen := range []Screen{ScreenTablet, ScreenPhone} {
		model := New(nil).Assemble(menu.Build(session.State{}), screen, "mail")
		signIn, ok := model.Find(menu.IDSignIn)
		if !ok {
			t.Fatalf("%s: expected sign-in entry", screen)
		}
		if len(signIn.Items) != 0 || signIn.Command == nil {
			t.Fatalf("%s: expected sign-in leaf with command, got %+v", screen, signIn)
		}
	}
}

func TestPhoneLayout(t *testing.T) {
	model := New(nil).Assemble(menu.Build(signedInState("mail")), ScreenPhone, "mail")
	if len(model) != 2 || !model[0].Separator {
		t.Fatalf("expected separator + single toggle, got %d entries", len(model))
	}
	toggle := model[1]
	if toggle.Template != TemplateMobileToggle || toggle.PanelClass != "panel-menu-phone phone" {
		t.Fatalf("unexpected phone toggle %+v", toggle)
	}
	want := []string{"mail", "orders", "marketing", "products", "contacts", "history", "reports", "inbounds", "supplies", "jdoe", "balance", "help"}
	if got := rootIDs(toggle.Panel); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected phone panel roots %v", got)
	}
	if balance, _ := model.Find("balance"); balance.Label != "$1,234.50 Balance" {
		t.Fatalf("expected amount folded into label, got %q", balance.Label)
	}
}

func TestAssembleUnknownScreen(t *testing.T) {
	model := New(nil).Assemble(menu.Build(session.State{}), Screen("watch"), "mail")
	if model == nil || len(model) != 0 {
		t.Fatalf("expected empty non-nil model, got %#v", model)
	}
}

func TestAssembleDoesNotMutateMapping(t *testing.T) {
	m := menu.Build(session.State{})
	before := menu.Build(session.State{})
	a := New(nil)
	for _, screen := range allScreens {
		a.Assemble(m, screen, "mail")
	}
	if !reflect.DeepEqual(m, before) {
		t.Fatalf("assemble mutated the mapping")
	}
}

func TestCommandsNotifyNavigator(t *testing.T) {
	var got []string
	a := New(navigation.NavigatorFunc(func(id string) { got = append(got, id) }))
	model := a.Assemble(menu.Build(signedInState("mail")), ScreenDesktop, "mail")

	model[0].Command.Execute()
	history, _ := model.Find("history")
	history.Items[0].Command.Execute()

	if !reflect.DeepEqual(got, []string{"mail", "searchPrintHistory"}) {
		t.Fatalf("unexpected navigation %v", got)
	}

	var inert *Command
	inert.Execute()
	(&Command{Target: "x"}).Execute()
}

func TestSignInPlaceholderTemplate(t *testing.T) {
	a := New(nil)
	out := a.bind([]slot{{entry: menu.Entry{ID: menu.IDSignIn, Items: []menu.Entry{{ID: menu.IDSignInForm}, {ID: menu.IDLegalTerms}}}}}, "")
	if out[0].Items[0].Template != TemplateSignInPlaceholder {
		t.Fatalf("expected placeholder template, got %v", out[0].Items[0].Template)
	}
	if out[0].Items[1].Template != TemplateDefault {
		t.Fatalf("expected default template for legal terms")
	}
}

func TestEmptyPageHighlightsNothing(t *testing.T) {
	a := New(nil)
	out := a.bind([]slot{{entry: menu.Entry{ID: ""}}}, "")
	if out[0].Active {
		t.Fatalf("empty page must not highlight")
	}
}

func TestHeaderWrapper(t *testing.T) {
	a := New(nil)
	m := menu.Build(session.State{})
	h := a.Header(m, ScreenTablet, "mail", false)
	if h.PanelClass != "header-panel-tablet" || h.LogoClass != "app-logo tablet" {
		t.Fatalf("unexpected header classes %+v", h)
	}
	if len(h.Model) == 0 {
		t.Fatalf("expected menu model")
	}
	plain := a.Header(m, ScreenPhone, "mail", true)
	if !plain.Plain || len(plain.Model) != 0 {
		t.Fatalf("expected plain header without menu, got %+v", plain)
	}
}

func TestRenderModelJSON(t *testing.T) {
	model := New(nil).Assemble(menu.Build(session.State{}), ScreenDesktop, "mail")
	data, err := json.Marshal(model)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	first := decoded[0]
	if first["id"] != "mail" || first["template"] != "default" {
		t.Fatalf("unexpected first entry %v", first)
	}
	cmd, ok := first["command"].(map[string]interface{})
	if !ok || cmd["navigate"] != "mail" {
		t.Fatalf("expected navigate command, got %v", first["command"])
	}
	if first["active"] != true {
		t.Fatalf("expected active flag on mail")
	}
}
