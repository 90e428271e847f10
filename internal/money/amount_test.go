package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"dollar with commas", "$1,234.56", "1234.56"},
		{"negative dollar", "-$10.00", "-10"},
		{"dollar then minus", "$-10.00", "-10"},
		{"whitespace", "  38.60 ", "38.6"},
		{"parentheses credit", "($5.25)", "-5.25"},
		{"cr suffix", "12.00CR", "-12"},
		{"trailing minus", "7.50-", "-7.5"},
		{"nil", nil, "0"},
		{"empty", "", "0"},
		{"garbage", "abc", "0"},
		{"lone dollar", "$", "0"},
		{"json number", json.Number("1120"), "1120"},
		{"float", 15.5, "15.5"},
		{"int", 3, "3"},
		{"bool is not money", true, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("Parse(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNullKeepsAbsence(t *testing.T) {
	for _, in := range []any{nil, "", "   ", "null", "not a number", map[string]any{}} {
		if got := ParseNull(in); got.Valid {
			t.Fatalf("ParseNull(%#v) should be invalid, got %s", in, got)
		}
	}
	if got := ParseNull("0.00"); !got.Valid || !got.Decimal.IsZero() {
		t.Fatalf("ParseNull(\"0.00\") should be a valid zero, got %+v", got)
	}
}

func TestNullAmountJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A NullAmount `json:"a"`
		B NullAmount `json:"b"`
	}{A: Amount(decimal.RequireFromString("27.24")), B: NullAmount{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":27.24,"b":null}` {
		t.Fatalf("unexpected json: %s", b)
	}

	var back struct {
		A NullAmount `json:"a"`
		B NullAmount `json:"b"`
	}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.A.Valid || back.A.Decimal.String() != "27.24" || back.B.Valid {
		t.Fatalf("unexpected round trip: %+v", back)
	}
}
