package reconcile

import (
	"testing"

	"github.com/joseph-ayodele/utility-bills/constants"
)

func TestDefaultRegistryCoversEveryProvider(t *testing.T) {
	reg := DefaultRegistry()
	for _, p := range constants.Providers() {
		rule, ok := reg.Lookup(string(p))
		if !ok {
			t.Errorf("no rule for %s", p)
			continue
		}
		if rule.Total == nil || len(rule.LineItems) == 0 {
			t.Errorf("%s: rule must check both line items and the total", p)
		}
		if rule.Description == "" {
			t.Errorf("%s: missing description", p)
		}
	}
	if got, want := len(reg.Providers()), len(constants.Providers()); got != want {
		t.Fatalf("registry has %d providers, constants list %d", got, want)
	}
}

func TestLookupBySynonym(t *testing.T) {
	tests := map[string]constants.Provider{
		"Seattle Public Utilities": constants.SeattlePublicUtil,
		"PSE":                      constants.PSE,
		"puget sound energy - gas": constants.PSEGas,
		"City of Bothell":          constants.Bothell,
		"WM":                       constants.WasteManagement,
		"valley_view":              constants.ValleyView,
	}
	for name, want := range tests {
		rule, ok := DefaultRegistry().Lookup(name)
		if !ok || rule.Provider != want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", name, rule.Provider, ok, want)
		}
	}
	if _, ok := DefaultRegistry().Lookup("Acme Water"); ok {
		t.Error("unexpected rule for unknown provider")
	}
}

func TestRegistryIsImmutableThroughLookup(t *testing.T) {
	rule, _ := DefaultRegistry().Lookup("spu")
	rule.Total.Formulas[0].Terms[0].Path = "statement.tampered"
	rule.LineItems[0].Stated[0] = "tampered"
	rule.LineItems = nil

	again, _ := DefaultRegistry().Lookup("spu")
	if again.Total.Formulas[0].Terms[0].Path == "statement.tampered" {
		t.Fatal("formula terms leaked out of the registry")
	}
	if len(again.LineItems) == 0 || again.LineItems[0].Stated[0] == "tampered" {
		t.Fatal("line item checks leaked out of the registry")
	}
}

func TestNewRegistryValidation(t *testing.T) {
	good := Rule{
		Provider:  "test",
		LineItems: []LineItemCheck{{Items: "items"}},
		Total:     &TotalCheck{At: "statement", Target: []string{"statement.total"}, Formulas: []Formula{F("", Add("statement.a"))}},
	}
	if _, err := NewRegistry(good); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}
	if _, err := NewRegistry(good, good); err == nil {
		t.Fatal("duplicate provider accepted")
	}
	bad := good
	bad.Provider = "bad"
	bad.LineItems = []LineItemCheck{{Items: "items[x]"}}
	if _, err := NewRegistry(bad); err == nil {
		t.Fatal("malformed selector accepted")
	}
	noFormula := good
	noFormula.Provider = "noformula"
	noFormula.Total = &TotalCheck{Target: []string{"t"}}
	if _, err := NewRegistry(noFormula); err == nil {
		t.Fatal("total check without formulas accepted")
	}

	reg, _ := NewRegistry(good)
	e := NewEngine(nil, WithRegistry(reg))
	if _, ok := e.Registry().Lookup("test"); !ok {
		t.Fatal("custom registry not used")
	}
}

func TestFormulaExpression(t *testing.T) {
	f := F("", Add("statement.previous_balance"), Sub("statement.payments_applied"), Add("services[*].current_service"))
	want := "statement.previous_balance - statement.payments_applied + sum(services[*].current_service)"
	if f.Name != want {
		t.Fatalf("name = %q, want %q", f.Name, want)
	}
}
