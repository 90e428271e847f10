package reconcile

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

func newTestEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func parseDoc(t *testing.T, s string) *bill.Document {
	t.Helper()
	doc, err := bill.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func reconcile(t *testing.T, s string) (*bill.Document, *Result) {
	t.Helper()
	doc := parseDoc(t, s)
	res, err := newTestEngine().Reconcile(doc)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	return doc, res
}

func mustAnnotation(t *testing.T, res *Result, id string) Annotation {
	t.Helper()
	a, ok := res.Annotation(id)
	if !ok {
		var ids []string
		for _, a := range res.Annotations() {
			ids = append(ids, a.ID())
		}
		t.Fatalf("annotation %q not found; have %v", id, ids)
	}
	return a
}

func assertOutcome(t *testing.T, a Annotation, want money.Outcome, wantDiff string) {
	t.Helper()
	if a.Outcome != want {
		t.Fatalf("%s: outcome = %v, want %v (reason %q)", a.ID(), a.Outcome, want, a.Reason)
	}
	if wantDiff == "" {
		if a.Difference.Valid {
			t.Fatalf("%s: difference = %s, want null", a.ID(), a.Difference)
		}
		return
	}
	if !a.Difference.Valid || !a.Difference.Decimal.Equal(decimal.RequireFromString(wantDiff)) {
		t.Fatalf("%s: difference = %s, want %s", a.ID(), a.Difference, wantDiff)
	}
}

func TestScenarioSignedPaymentsTotal(t *testing.T) {
	_, res := reconcile(t, `{
		"provider": "lacey",
		"statement": {"previous_balance": "100.00", "payments_applied": "-100.00", "current_billing": "50.00", "total_amount_due": "50.00"}
	}`)
	a := mustAnnotation(t, res, "statement.total_amount_validation")
	assertOutcome(t, a, money.Matched, "0")
	if !a.Calculated.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("calculated_total = %s, want 50", a.Calculated)
	}
}

func TestScenarioServiceSubtotal(t *testing.T) {
	_, res := reconcile(t, `{
		"provider": "auburn",
		"statement": {"balance_forward": "10.00", "current_billing": "38.60", "total_amount_due": "48.60"},
		"services": [{"service_type": "Water", "current_service": "$38.60",
			"line_item_charges": [{"category": "Base service charge", "amount": "38.60"}]}]
	}`)
	assertOutcome(t, mustAnnotation(t, res, "services[0].line_item_charges_validation"), money.Matched, "0")
	assertOutcome(t, mustAnnotation(t, res, "statement.total_amount_validation"), money.Matched, "0")
	if !res.Passed() {
		t.Fatal("expected gate to pass")
	}
}

func TestScenarioFlatLineItems(t *testing.T) {
	const tmpl = `{
		"provider": "bothell",
		"statement": {"current_billing": %q},
		"line_items": [{"category": "Water", "amount": "$1,488.98"}, {"category": "Sewer", "amount": "$238.26"}]
	}`
	_, res := reconcile(t, sprintf(tmpl, "$1,727.24"))
	assertOutcome(t, mustAnnotation(t, res, "statement.line_item_charges_validation"), money.Matched, "0")

	_, res = reconcile(t, sprintf(tmpl, "$1,700.00"))
	a := mustAnnotation(t, res, "statement.line_item_charges_validation")
	assertOutcome(t, a, money.Mismatched, "27.24")
	if res.Passed() {
		t.Fatal("expected gate to fail")
	}
}

func TestScenarioMissingTotalIsInapplicable(t *testing.T) {
	for _, provider := range []string{"lacey", "auburn", "bothell", "spu", "pse_electric", "waste_management"} {
		t.Run(provider, func(t *testing.T) {
			_, res := reconcile(t, `{"provider": "`+provider+`",
				"statement": {"previous_balance": "12.00", "current_billing": "99.00", "total_amount_due": null}}`)
			a := mustAnnotation(t, res, "statement.total_amount_validation")
			assertOutcome(t, a, money.Inapplicable, "")
			if !res.Passed() {
				t.Fatal("inapplicable checks must not fail the gate")
			}
		})
	}
}

func TestScenarioMultiplierCorrection(t *testing.T) {
	doc, res := reconcile(t, `{
		"provider": "pse_electric",
		"statement": {"total_amount_due": "10.00"},
		"meters": [{"meter_number": "Z123", "start_read": 1352, "end_read": 1366, "usage": 1120, "multiplier": 40,
			"total_current_charges": "10.00", "line_item_charges": [{"amount": "10.00"}]}]
	}`)
	if got, _ := bill.Get(doc.Root, "meters[0].multiplier"); got != "80" {
		t.Fatalf("multiplier = %v, want \"80\"", got)
	}
	if len(res.Corrections) != 1 || res.Corrections[0].Path != "meters[0]" {
		t.Fatalf("corrections = %+v", res.Corrections)
	}
}

func TestSignHandling(t *testing.T) {
	_, res := reconcile(t, `{
		"provider": "auburn",
		"services": [{"current_service": "5.00", "line_item_charges": [{"amount": "15.00"}, {"amount": "-$10.00"}]}]
	}`)
	assertOutcome(t, mustAnnotation(t, res, "services[0].line_item_charges_validation"), money.Matched, "0")
}

func TestSumInvariantAcrossStatedValues(t *testing.T) {
	items := `[{"amount":"10.00"},{"amount":null},{"amount":"2.00"}]`
	tests := []struct {
		stated string
		want   money.Outcome
	}{
		{"12.00", money.Matched},
		{"12.01", money.Matched},
		{"12.02", money.Mismatched},
		{"11.99", money.Matched},
		{"11.98", money.Mismatched},
		{"12.005", money.Matched},
	}
	for _, tt := range tests {
		t.Run(tt.stated, func(t *testing.T) {
			_, res := reconcile(t, `{"provider":"auburn","services":[{"current_service":"`+tt.stated+`","line_item_charges":`+items+`}]}`)
			a := mustAnnotation(t, res, "services[0].line_item_charges_validation")
			if a.Outcome != tt.want {
				t.Fatalf("stated %s: outcome %v, want %v (diff %s)", tt.stated, a.Outcome, tt.want, a.Difference)
			}
		})
	}
}

func TestAbsentStatedSubtotalIsInapplicable(t *testing.T) {
	_, res := reconcile(t, `{"provider":"auburn","services":[{"line_item_charges":[{"amount":"999.99"}]}]}`)
	assertOutcome(t, mustAnnotation(t, res, "services[0].line_item_charges_validation"), money.Inapplicable, "")
}

func TestAbsentLineItemsIsInapplicable(t *testing.T) {
	_, res := reconcile(t, `{"provider":"auburn","services":[{"current_service":"20.00"}]}`)
	a := mustAnnotation(t, res, "services[0].line_item_charges_validation")
	assertOutcome(t, a, money.Inapplicable, "")
	if a.Reason != "line items absent" {
		t.Fatalf("reason = %q", a.Reason)
	}
}

func TestTotalFormulas(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		want       money.Outcome
		calculated string
	}{
		{
			"balance forward",
			`{"provider":"olympia","statement":{"balance_forward":"10.00","current_billing":"20.00","total_amount_due":"30.00"}}`,
			money.Matched, "30",
		},
		{
			"previous charges",
			`{"provider":"bellevue","statement":{"total_previous_charges":"0.00","current_billing":"81.12","total_amount_due":"81.12"}}`,
			money.Matched, "81.12",
		},
		{
			"pse statement",
			`{"provider":"Puget Sound Energy","statement":{"total_previous_charges":"5.00","current_billing":"81.12","total_amount_due":"86.12"}}`,
			money.Matched, "86.12",
		},
		{
			"penalties subtract positive payments",
			`{"provider":"bothell","statement":{"previous_balance":"100.00","payments_applied":"100.00","penalties_adjustments":"5.00","current_billing":"50.00","total_amount_due":"55.00"}}`,
			money.Matched, "55",
		},
		{
			"recology signed payments",
			`{"provider":"recology","statement":{"previous_balance":"40.00","payments_applied":"-40.00","current_adjustments":"-2.00","current_billing":"41.50","total_amount_due":"39.50"}}`,
			money.Matched, "39.5",
		},
		{
			"waste management",
			`{"provider":"waste_management","statement":{"previous_balance":"120.00","payments_applied":"-120.00","adjustments":"3.00","current_billing":"118.00","total_amount_due":"121.00"}}`,
			money.Matched, "121",
		},
		{
			"tacoma late fees",
			`{"provider":"tacoma_public_utilities","statement":{"previous_balance":"50.00","payments_applied":"0","late_fees":"5.00","current_billing":"60.00","total_amount_due":"115.00"}}`,
			money.Matched, "115",
		},
		{
			"wrong total",
			`{"provider":"bothell","statement":{"previous_balance":"100.00","payments_applied":"-100.00","current_billing":"50.00","total_amount_due":"50.00"}}`,
			money.Mismatched, "250",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := reconcile(t, tt.doc)
			a := mustAnnotation(t, res, "statement.total_amount_validation")
			if a.Outcome != tt.want {
				t.Fatalf("outcome = %v, want %v (%s)", a.Outcome, tt.want, a.Reason)
			}
			if !a.Calculated.Equal(decimal.RequireFromString(tt.calculated)) {
				t.Fatalf("calculated = %s, want %s", a.Calculated, tt.calculated)
			}
		})
	}
}

func TestSPURecordsFormulaUsed(t *testing.T) {
	const tmpl = `{
		"provider": "spu",
		"statement": {"balance": %q, "previous_balance": "45.00", "payments_applied": "45.00", "adjustments": "0", "total_amount_due": %q},
		"service_types": [
			{"service_type": "Water", "current_service": "30.00", "line_item_charges": [{"amount": "30.00"}]},
			{"service_type": "Sewer", "current_service": "20.00", "line_item_charges": [{"amount": "20.00"}, {"category": "Subtotal", "amount": "20.00"}]}
		]
	}`
	tests := []struct {
		name, balance, total string
		want                 money.Outcome
		formula              string
		attempted            []string
	}{
		{"preferred", "0.00", "50.00", money.Matched, "preferred", []string{"preferred"}},
		{"fallback", "10.00", "50.00", money.Matched, "fallback", []string{"preferred", "fallback"}},
		{"neither", "0.00", "70.00", money.Mismatched, "preferred", []string{"preferred", "fallback"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := reconcile(t, sprintf(tmpl, tt.balance, tt.total))
			a := mustAnnotation(t, res, "statement.total_amount_validation")
			if a.Outcome != tt.want || a.Formula != tt.formula {
				t.Fatalf("outcome %v formula %q, want %v %q", a.Outcome, a.Formula, tt.want, tt.formula)
			}
			if !reflect.DeepEqual(a.Attempted, tt.attempted) {
				t.Fatalf("attempted = %v, want %v", a.Attempted, tt.attempted)
			}
			sewer := mustAnnotation(t, res, "service_types[1].line_item_charges_validation")
			assertOutcome(t, sewer, money.Matched, "0")
			if len(sewer.Excluded) != 1 || sewer.Excluded[0] != "Subtotal" {
				t.Fatalf("excluded = %v", sewer.Excluded)
			}
		})
	}
}

func TestSPUServiceAmountAliases(t *testing.T) {
	tests := []struct {
		name     string
		services string
		total    string
		want     money.Outcome
		calc     string
	}{
		{
			name: "current_service_amount",
			services: `[
				{"service_type": "Water", "current_service_amount": "60.00", "line_item_charges": [{"amount": "60.00"}]},
				{"service_type": "Sewer", "current_service_amount": "40.00", "line_item_charges": [{"amount": "40.00"}]}]`,
			total: "100.00", want: money.Matched, calc: "100",
		},
		{
			name: "mixed names",
			services: `[
				{"service_type": "Water", "current_service": "60.00", "line_item_charges": [{"amount": "60.00"}]},
				{"service_type": "Sewer", "current_service_amount": "40.00", "line_item_charges": [{"amount": "40.00"}]}]`,
			total: "100.00", want: money.Matched, calc: "100",
		},
		{
			name: "both names counted once",
			services: `[
				{"service_type": "Water", "current_service": "60.00", "current_service_amount": "60.00", "line_item_charges": [{"amount": "60.00"}]}]`,
			total: "60.00", want: money.Matched, calc: "60",
		},
		{
			name: "null preferred falls through",
			services: `[
				{"service_type": "Water", "current_service": null, "current_service_amount": "$25.50", "line_item_charges": [{"amount": "25.50"}]}]`,
			total: "25.50", want: money.Matched, calc: "25.5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"provider": "spu", "statement": {"balance": "0.00", "total_amount_due": "` + tt.total + `"}, "service_types": ` + tt.services + `}`
			_, res := reconcile(t, doc)
			a := mustAnnotation(t, res, "statement.total_amount_validation")
			if a.Outcome != tt.want {
				t.Fatalf("outcome = %v, want %v (%s)", a.Outcome, tt.want, a.Reason)
			}
			if !a.Calculated.Equal(decimal.RequireFromString(tt.calc)) {
				t.Fatalf("calculated = %s, want %s", a.Calculated, tt.calc)
			}
			if !res.Passed() {
				t.Fatalf("gate failed: %v", res.Failures())
			}
		})
	}
}

func TestPSEMeterDisjunction(t *testing.T) {
	const tmpl = `{
		"provider": "pse_gas",
		"statement": {"previous_balance": "20.00", "total_amount_due": %q},
		"meters": [{"meter_number": "G1", "total_current_charges": "80.00",
			"line_item_charges": [{"amount": "50.00"}, {"amount": "30.00"}]}]
	}`
	tests := []struct {
		total, formula string
		want           money.Outcome
	}{
		{"80.00", "meter_charges", money.Matched},
		{"100.00", "meter_charges_plus_previous_balance", money.Matched},
		{"90.00", "meter_charges", money.Mismatched},
	}
	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			_, res := reconcile(t, sprintf(tmpl, tt.total))
			a := mustAnnotation(t, res, "statement.total_amount_validation")
			if a.Outcome != tt.want || a.Formula != tt.formula {
				t.Fatalf("outcome %v formula %q, want %v %q", a.Outcome, a.Formula, tt.want, tt.formula)
			}
			assertOutcome(t, mustAnnotation(t, res, "meters[0].line_item_charges_validation"), money.Matched, "0")
		})
	}
}

func TestValleyViewSplitChargeRepair(t *testing.T) {
	doc, res := reconcile(t, `{
		"provider": "Valley View Sewer District",
		"statement": {"previous_balance": "63.00", "payments_applied": "-63.00", "current_billing": "63.00", "total_amount_due": "63.00"},
		"line_items": [
			{"category": "First Unit Charge", "usage": 12, "rate": "4.50", "amount": "4.50"},
			{"category": "Total", "amount": "63.00"}
		]
	}`)
	assertOutcome(t, mustAnnotation(t, res, "statement.line_item_charges_validation"), money.Matched, "0")
	items, _ := bill.Get(doc.Root, "line_items")
	if n := len(items.([]any)); n != 3 {
		t.Fatalf("line_items = %d, want 3", n)
	}
	if len(res.Corrections) != 2 {
		t.Fatalf("corrections = %+v", res.Corrections)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	const src = `{
		"provider": "valley_view",
		"statement": {"previous_balance": "10.00", "payments_applied": "-10.00", "current_billing": "70.00", "total_amount_due": "70.00"},
		"line_items": [{"category": "First Unit Charge", "usage": 12, "rate": "4.50", "amount": "4.50"}, {"category": "Late fee", "amount": "7.00"}]
	}`
	e := newTestEngine()
	doc := parseDoc(t, src)
	first, err := e.Reconcile(doc)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := e.Reconcile(doc)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !sameAnnotations(first, second) {
		t.Fatalf("second run differs:\n%s\n%s", dump(first), dump(second))
	}
	if len(second.Corrections) != 0 {
		t.Fatalf("second run corrected again: %+v", second.Corrections)
	}

	merged := bill.New(doc.Provider, first.Merge(doc))
	third, err := e.Reconcile(merged)
	if err != nil {
		t.Fatalf("merged: %v", err)
	}
	if !sameAnnotations(first, third) {
		t.Fatalf("reconciling the merged tree differs:\n%s\n%s", dump(first), dump(third))
	}
}

func TestUnknownProvider(t *testing.T) {
	_, err := newTestEngine().Reconcile(parseDoc(t, `{"provider":"acme power"}`))
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("err = %v, want ErrUnknownProvider", err)
	}
}

func TestMergeShape(t *testing.T) {
	doc, res := reconcile(t, `{
		"provider": "bothell",
		"statement": {"current_billing": "$1,700.00", "total_amount_due": null},
		"line_items": [{"amount": "$1,488.98"}, {"amount": "$238.26"}]
	}`)
	merged := res.Merge(doc)
	if _, ok := doc.Root["statement"].(map[string]any)[KeyLineItems]; ok {
		t.Fatal("merge must not modify the source tree")
	}
	b, err := json.Marshal(merged["statement"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	li := got[KeyLineItems].(map[string]any)
	if li["is_match"] != false || li["difference"] != 27.24 || li["sum_line_items"] != 1727.24 || li["stated_subtotal"] != 1700.0 {
		t.Fatalf("line item annotation = %v", li)
	}
	tot := got[KeyTotal].(map[string]any)
	if tot["is_match"] != nil || tot["difference"] != nil || tot["stated_total"] != nil {
		t.Fatalf("total annotation = %v", tot)
	}
	if got["current_billing"] != "$1,700.00" {
		t.Fatalf("extracted field changed: %v", got["current_billing"])
	}
}

func sameAnnotations(a, b *Result) bool {
	return dump(a) == dump(b)
}

func dump(r *Result) string {
	b, _ := json.Marshal(r.Annotations())
	return string(b)
}
