package reconcile

import (
	"testing"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
)

const gateDoc = `{
	"provider": "auburn",
	"statement": {"balance_forward": "0", "current_billing": "30.00", "total_amount_due": "30.00"},
	"services": [
		{"current_service": "10.00", "line_item_charges": [{"amount": "10.00"}]},
		{"current_service": "20.00", "line_item_charges": [{"amount": "20.00"}]},
		{"line_item_charges": [{"amount": "5.00"}]}
	]
}`

func TestGateOverMergedTree(t *testing.T) {
	doc, res := reconcile(t, gateDoc)
	if !res.Passed() {
		t.Fatalf("expected pass, failures: %+v", res.Failures())
	}
	rule, _ := DefaultRegistry().Lookup("auburn")
	merged := res.Merge(doc)
	if !CheckValidationPassed(rule, merged) {
		t.Fatal("merged tree should pass")
	}

	ids := []string{
		"statement.total_amount_validation",
		"services[0].line_item_charges_validation",
		"services[1].line_item_charges_validation",
		"services[2].line_item_charges_validation",
	}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			tree := bill.DeepCopy(merged).(map[string]any)
			a, ok := bill.Object(tree, id)
			if !ok {
				t.Fatalf("annotation %s missing from merged tree", id)
			}
			a["is_match"] = false
			if CheckValidationPassed(rule, tree) {
				t.Fatal("flipping one annotation to false must fail the gate")
			}
			a["is_match"] = nil
			if !CheckValidationPassed(rule, tree) {
				t.Fatal("null is_match must not fail the gate")
			}
		})
	}
}

func TestGateIgnoresForeignAnnotations(t *testing.T) {
	doc, res := reconcile(t, gateDoc)
	rule, _ := DefaultRegistry().Lookup("auburn")
	merged := res.Merge(doc)
	merged["unrelated"] = map[string]any{"is_match": false}
	if !CheckValidationPassed(rule, merged) {
		t.Fatal("gate must only read the rule's annotation locations")
	}
}

func TestGateHasNoSideEffects(t *testing.T) {
	doc, res := reconcile(t, gateDoc)
	rule, _ := DefaultRegistry().Lookup("auburn")
	merged := res.Merge(doc)
	before := bill.DeepCopy(merged)
	for i := 0; i < 3; i++ {
		if !CheckValidationPassed(rule, merged) || !res.Passed() {
			t.Fatal("gate result changed between calls")
		}
	}
	if dumpTree(before) != dumpTree(merged) {
		t.Fatal("gate modified the tree")
	}
}

func TestRevalidate(t *testing.T) {
	doc := parseDoc(t, `{"provider":"bothell","statement":{"current_billing":"1.00"},"line_items":[{"amount":"2.00"}]}`)
	e := newTestEngine()
	res, err := e.Reconcile(doc)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	ok, err := e.Revalidate(bill.New("bothell", res.Merge(doc)))
	if err != nil || ok {
		t.Fatalf("revalidate = %v, %v; want false, nil", ok, err)
	}
}
