package reconcile

import (
	"encoding/json"
	"testing"
)

func meter(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m
}

func TestNormalizeMultiplier(t *testing.T) {
	tests := []struct {
		name    string
		meter   string
		wantFix bool
		want    any
	}{
		{"power of two error", `{"previous_reading":"1352","current_reading":"1366","usage":"1120","multiplier":"40"}`, true, "80"},
		{"missing multiplier", `{"start_read":1352,"end_read":1366,"usage":1120}`, true, "80"},
		{"null multiplier", `{"start_read":1352,"end_read":1366,"usage":1120,"multiplier":null}`, true, "80"},
		{"usage_multiplier alias", `{"start_read":100,"end_read":110,"usage":20,"usage_multiplier":"1"}`, true, "2"},
		{"already right", `{"start_read":1352,"end_read":1366,"usage":1120,"multiplier":"80"}`, false, "80"},
		{"within 0.1", `{"start_read":0,"end_read":10,"usage":10,"multiplier":1.05}`, false, 1.05},
		{"reversed readings", `{"start_read":1366,"end_read":1352,"usage":1120,"multiplier":"40"}`, false, "40"},
		{"equal readings", `{"start_read":5,"end_read":5,"usage":10,"multiplier":"40"}`, false, "40"},
		{"fractional ratio", `{"start_read":0,"end_read":3,"usage":10,"multiplier":"1"}`, false, "1"},
		{"missing usage", `{"start_read":0,"end_read":3,"multiplier":"1"}`, false, "1"},
		{"near integral", `{"start_read":0,"end_read":1000,"usage":80005,"multiplier":"40"}`, true, "80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := meter(t, tt.meter)
			c, fixed := NormalizeMultiplier(m)
			if fixed != tt.wantFix {
				t.Fatalf("fixed = %v, want %v (%+v)", fixed, tt.wantFix, c)
			}
			key := "multiplier"
			if _, ok := m["usage_multiplier"]; ok {
				key = "usage_multiplier"
			}
			if m[key] != tt.want {
				t.Fatalf("%s = %#v, want %#v", key, m[key], tt.want)
			}
		})
	}
}

func TestCorrectMultipliersStep(t *testing.T) {
	root := map[string]any{
		"meters": []any{
			meter(t, `{"start_read":1352,"end_read":1366,"usage":1120,"multiplier":"40"}`),
			meter(t, `{"start_read":1,"end_read":2,"usage":1,"multiplier":"1"}`),
		},
	}
	corr := CorrectMultipliers("meters[*]").Apply(root)
	if len(corr) != 1 || corr[0].Path != "meters[0]" || corr[0].Old != "40" || corr[0].New != "80" {
		t.Fatalf("corrections = %+v", corr)
	}
}
