package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func decodeItems(t *testing.T, s string) []any {
	t.Helper()
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	return items
}

func TestSumLineItems(t *testing.T) {
	tests := []struct {
		name    string
		items   string
		exclude ExcludeFunc
		want    string
	}{
		{"amount strings", `[{"amount":"$1,488.98"},{"amount":"$238.26"}]`, nil, "1727.24"},
		{"credit subtracts", `[{"amount":"15.00"},{"amount":"-$10.00"}]`, nil, "5"},
		{"nulls are zero", `[{"amount":null},{"amount":""},{"amount":"abc"},{"amount":"2.50"}]`, nil, "2.5"},
		{"charge alias", `[{"charge":"3.00"},{"amount":"1.00","charge":"9.00"}]`, nil, "4"},
		{"scalars", `["1.25", 2]`, nil, "3.25"},
		{
			"summary rows excluded",
			`[{"category":"Water","amount":"10"},{"category":"Total","amount":"10"},{"name":"GRAND  TOTAL:","amount":"10"},{"description":"Payment Lockbox","amount":"-5"}]`,
			SummaryRowExcluder(),
			"10",
		},
		{
			"labels that merely contain total are kept",
			`[{"category":"Total Water Usage Charge","amount":"10"}]`,
			SummaryRowExcluder(),
			"10",
		},
		{
			"summary patterns excluded",
			`[{"category":"Water","amount":"10"},{"category":"Total Water Charges","amount":"10"},{"name":"Subtotal - Sewer","amount":"10"},{"description":"Sewer Service Total:","amount":"10"},{"category":"total amount due","amount":"10"}]`,
			SummaryRowExcluder(),
			"10",
		},
		{
			"words starting with total are kept",
			`[{"category":"Totalizer Fee","amount":"4"},{"category":"Totals Adjustment Credit","amount":"-1"}]`,
			SummaryRowExcluder(),
			"3",
		},
		{
			"extra labels",
			`[{"category":"Water","amount":"10"},{"category":"Account Balance","amount":"99"}]`,
			SummaryRowExcluder("account balance"),
			"10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumLineItems(decodeItems(t, tt.items), nil, tt.exclude)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("sum = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRepairSplitCharges(t *testing.T) {
	items := decodeItems(t, `[
		{"category":"First Unit Charge","usage":12,"rate":"4.50","amount":"4.50"},
		{"category":"Stormwater","amount":"3.00"}
	]`)

	repaired, corr := RepairSplitCharges(items)
	if len(repaired) != 3 {
		t.Fatalf("expected a synthesized row, got %d items", len(repaired))
	}
	if len(corr) != 2 {
		t.Fatalf("expected 2 corrections, got %d", len(corr))
	}
	synth := repaired[2].(map[string]any)
	if synth["amount"] != "58.50" {
		t.Fatalf("synthesized amount = %v, want 58.50", synth["amount"])
	}
	if synth["category"] != "12 Units @ $4.50" {
		t.Fatalf("synthesized category = %v", synth["category"])
	}
	if got := items[0].(map[string]any)["usage"]; got != json.Number("1") {
		t.Fatalf("first unit usage = %v, want 1", got)
	}
	if sum := SumLineItems(repaired, nil, nil); !sum.Equal(decimal.RequireFromString("66")) {
		t.Fatalf("sum after repair = %s, want 66", sum)
	}

	again, corr := RepairSplitCharges(repaired)
	if len(again) != 3 || len(corr) != 0 {
		t.Fatalf("repair is not idempotent: %d items, %d corrections", len(again), len(corr))
	}
}

func TestRepairSplitChargesLeavesOtherShapesAlone(t *testing.T) {
	cases := map[string]string{
		"units row present": `[{"category":"First Unit Charge","usage":5,"rate":"4.50"},{"category":"4 Units @ $4.50","amount":"18.00"}]`,
		"single unit":       `[{"category":"First Unit Charge","usage":1,"rate":"4.50"}]`,
		"no first unit":     `[{"category":"Sewer","usage":9,"rate":"4.50"}]`,
		"no rate":           `[{"category":"First Unit Charge","usage":9}]`,
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			items := decodeItems(t, s)
			out, corr := RepairSplitCharges(items)
			if len(out) != len(items) || len(corr) != 0 {
				t.Fatalf("unexpected repair: %d -> %d items, %d corrections", len(items), len(out), len(corr))
			}
		})
	}
}
