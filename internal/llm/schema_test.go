package llm

import (
	"slices"
	"strings"
	"testing"

	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

func mustRule(t *testing.T, provider string) reconcile.Rule {
	t.Helper()
	rule, ok := reconcile.DefaultRegistry().Lookup(provider)
	if !ok {
		t.Fatalf("no rule for %q", provider)
	}
	return rule
}

func TestBuildBillJSONSchema_Shape(t *testing.T) {
	schema := BuildBillJSONSchema(mustRule(t, "kent"))

	required, _ := schema["required"].([]string)
	if !slices.Contains(required, "provider") || !slices.Contains(required, "statement") {
		t.Fatalf("required = %v, want provider and statement", required)
	}
	props := schema["properties"].(map[string]any)
	services, ok := props["services"].(map[string]any)
	if !ok || services["type"] != "array" {
		t.Fatalf("services = %#v, want array", props["services"])
	}
	item := services["items"].(map[string]any)
	itemProps := item["properties"].(map[string]any)
	if _, ok := itemProps["line_item_charges"]; !ok {
		t.Errorf("services items missing line_item_charges: %v", itemProps)
	}
	if _, ok := itemProps["current_service"]; !ok {
		t.Errorf("services items missing current_service: %v", itemProps)
	}
	statement := props["statement"].(map[string]any)["properties"].(map[string]any)
	for _, k := range []string{"total_amount_due", "balance_forward", "current_billing"} {
		if _, ok := statement[k]; !ok {
			t.Errorf("statement missing %s", k)
		}
	}
}

func TestBuildBillJSONSchema_Validation(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		doc      string
		wantErr  bool
	}{
		{
			name:     "kent valid",
			provider: "kent",
			doc: `{"provider":"kent","statement":{"total_amount_due":"$45.00","balance_forward":0,"current_billing":45},
				"services":[{"current_service":"45.00","line_item_charges":[{"description":"Water","amount":"45.00"}]}]}`,
		},
		{
			name:     "extra fields allowed",
			provider: "kent",
			doc:      `{"provider":"kent","account_number":"123","statement":{"total_amount_due":null,"due_date":"2024-01-01"}}`,
		},
		{
			name:     "missing statement",
			provider: "kent",
			doc:      `{"provider":"kent","services":[]}`,
			wantErr:  true,
		},
		{
			name:     "amount of wrong type",
			provider: "kent",
			doc:      `{"provider":"kent","statement":{"total_amount_due":{"value":1}}}`,
			wantErr:  true,
		},
		{
			name:     "line items not a list",
			provider: "valley_view",
			doc:      `{"provider":"valley_view","statement":{},"line_items":{"a":1}}`,
			wantErr:  true,
		},
		{
			name:     "meters valid",
			provider: "pse_electric",
			doc:      `{"provider":"pse_electric","statement":{"total_amount_due":"10"},"meters":[{"total_current_charges":"10","line_item_charges":[]}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(BuildBillJSONSchema(mustRule(t, tt.provider)), []byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildSystemPromptNamesFields(t *testing.T) {
	p := BuildSystemPrompt(mustRule(t, "spu"))
	for _, want := range []string{`"spu"`, "service_types[*].line_item_charges", "statement.balance", "statement.total_amount_due"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(p, "current_service_amount") {
		t.Error("prompt should only name the preferred alias")
	}
}

func TestBuildDetectPrompt(t *testing.T) {
	p := BuildDetectPrompt([]string{"kent", "spu"})
	if !strings.Contains(p, "kent, spu") {
		t.Errorf("prompt = %q", p)
	}
}
