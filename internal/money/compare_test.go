package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompare(t *testing.T) {
	tests := []struct {
		name       string
		calculated string
		stated     NullAmount
		wantOut    Outcome
		wantDiff   string
	}{
		{"exact", "50.00", Amount(d("50.00")), Matched, "0"},
		{"within tolerance", "50.01", Amount(d("50.00")), Matched, "0.01"},
		{"outside tolerance", "50.02", Amount(d("50.00")), Mismatched, "0.02"},
		{"negative difference", "1700.00", Amount(d("1727.24")), Mismatched, "-27.24"},
		{"float noise rounds away", "0.30000000001", Amount(d("0.3")), Matched, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(d(tt.calculated), tt.stated, DefaultTolerance)
			if got.Outcome != tt.wantOut {
				t.Fatalf("outcome = %v, want %v", got.Outcome, tt.wantOut)
			}
			if !got.Difference.Valid || !got.Difference.Decimal.Equal(d(tt.wantDiff)) {
				t.Fatalf("difference = %s, want %s", got.Difference, tt.wantDiff)
			}
		})
	}
}

func TestCompareAbsentStatedIsInapplicable(t *testing.T) {
	for _, calc := range []string{"0", "50", "-12.34"} {
		got := Compare(d(calc), NullAmount{}, DefaultTolerance)
		if got.Outcome != Inapplicable {
			t.Fatalf("calc %s: outcome = %v, want inapplicable", calc, got.Outcome)
		}
		if got.Difference.Valid {
			t.Fatalf("calc %s: difference should be null, got %s", calc, got.Difference)
		}
		if got.Outcome.IsMatch() != nil {
			t.Fatalf("calc %s: IsMatch should be nil", calc)
		}
	}
}

func TestOutcomeJSON(t *testing.T) {
	for _, o := range []Outcome{Inapplicable, Matched, Mismatched} {
		b, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %v: %v", o, err)
		}
		var back Outcome
		if err := back.UnmarshalJSON(b); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back != o {
			t.Fatalf("round trip %v -> %s -> %v", o, b, back)
		}
	}
	if OutcomeOf(nil) != Inapplicable || OutcomeOf(true) != Matched || OutcomeOf(false) != Mismatched {
		t.Fatal("OutcomeOf mapping broken")
	}
}
