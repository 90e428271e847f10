package llm

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"
)

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m
}

func TestSanitizeBillJSON(t *testing.T) {
	raw := []byte(`{
		"statement": {"total_amount_due": " $1,234.5 ", "balance": null, "adjustments": "", "due_date": " 2024-02-01 "},
		"service_types": [
			{"name": "Water", "current_service_amount": "(12.00)",
			 "line_item_charges": [{"description": "Base", "amount": 7}, {"description": "Usage", "amount": "n/a"}]}
		]
	}`)

	out, dropped, err := SanitizeBillJSON(raw, mustRule(t, "spu"), nil)
	if err != nil {
		t.Fatalf("SanitizeBillJSON: %v", err)
	}
	m := decode(t, out)

	if m["provider"] != "spu" {
		t.Errorf("provider = %v, want spu", m["provider"])
	}
	st := m["statement"].(map[string]any)
	if st["total_amount_due"] != json.Number("1234.50") {
		t.Errorf("total_amount_due = %#v, want 1234.50", st["total_amount_due"])
	}
	if _, ok := st["balance"]; ok {
		t.Error("null balance should be dropped")
	}
	if _, ok := st["adjustments"]; ok {
		t.Error("empty adjustments should be dropped")
	}
	if st["due_date"] != "2024-02-01" {
		t.Errorf("due_date = %q, want trimmed", st["due_date"])
	}

	svc := m["service_types"].([]any)[0].(map[string]any)
	if _, ok := svc["current_service_amount"]; ok {
		t.Error("current_service_amount should be renamed")
	}
	if svc["current_service"] != json.Number("-12.00") {
		t.Errorf("current_service = %#v, want -12.00", svc["current_service"])
	}
	items := svc["line_item_charges"].([]any)
	if items[0].(map[string]any)["amount"] != json.Number("7.00") {
		t.Errorf("first amount = %#v, want 7.00", items[0].(map[string]any)["amount"])
	}
	if items[1].(map[string]any)["amount"] != "n/a" {
		t.Errorf("unparseable amount should be kept, got %#v", items[1].(map[string]any)["amount"])
	}

	for _, want := range []string{"statement.balance(null)", "statement.adjustments(empty)", "service_types[0].current_service_amount->current_service", "provider(set)"} {
		if !slices.Contains(dropped, want) {
			t.Errorf("dropped %v missing %q", dropped, want)
		}
	}

	if err := ValidateJSONAgainstSchema(BuildBillJSONSchema(mustRule(t, "spu")), out); err != nil {
		t.Errorf("sanitized output should validate: %v", err)
	}
}

func TestSanitizeBillJSONRejectsNonObject(t *testing.T) {
	if _, _, err := SanitizeBillJSON([]byte(`[1,2]`), mustRule(t, "kent"), nil); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSanitizeBillJSONSynonymPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      json.Number
	}{
		{"total_due before amount_due", `{"amount_due": "20.00", "total_due": "10.00"}`, "10.00"},
		{"canonical name kept", `{"total_amount_due": "5", "total_due": "10.00", "amount_due": "20.00"}`, "5.00"},
		{"null canonical replaced", `{"total_amount_due": null, "amount_due": "20.00"}`, "20.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(`{"provider": "kent", "statement": ` + tt.statement + `}`)
			// repeated runs must agree regardless of map ordering
			for i := 0; i < 20; i++ {
				out, _, err := SanitizeBillJSON(raw, mustRule(t, "kent"), nil)
				if err != nil {
					t.Fatalf("SanitizeBillJSON: %v", err)
				}
				st := decode(t, out)["statement"].(map[string]any)
				if st["total_amount_due"] != tt.want {
					t.Fatalf("run %d: total_amount_due = %#v, want %s", i, st["total_amount_due"], tt.want)
				}
				for _, k := range []string{"total_due", "amount_due"} {
					if _, ok := st[k]; ok {
						t.Fatalf("run %d: %s should be renamed", i, k)
					}
				}
			}
		})
	}
}
