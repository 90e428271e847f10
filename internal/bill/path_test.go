package bill

import (
	"reflect"
	"strings"
	"testing"
)

const sample = `{
  "provider": "spu",
  "statement": {"total_amount_due": "$10.00"},
  "service_types": [
    {"service_type": "Water", "current_service": "4.00", "line_item_charges": [{"amount": "4.00"}]},
    {"service_type": "Sewer", "current_service": 6, "line_item_charges": []}
  ]
}`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestSelect(t *testing.T) {
	doc := mustParse(t, sample)

	tests := []struct {
		selector  string
		wantPaths []string
	}{
		{"statement.total_amount_due", []string{"statement.total_amount_due"}},
		{"service_types[*].current_service", []string{"service_types[0].current_service", "service_types[1].current_service"}},
		{"service_types[1]", []string{"service_types[1]"}},
		{"service_types[5]", nil},
		{"service_types[*].line_item_charges[*].amount", []string{"service_types[0].line_item_charges[0].amount"}},
		{"missing.field", nil},
		{"statement[*]", nil},
		{"", []string{""}},
		{"bad[", nil},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			var got []string
			for _, m := range Select(doc.Root, tt.selector) {
				got = append(got, m.Path)
			}
			if !reflect.DeepEqual(got, tt.wantPaths) {
				t.Fatalf("Select(%q) = %v, want %v", tt.selector, got, tt.wantPaths)
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	doc := mustParse(t, sample)
	if err := Set(doc.Root, "service_types[1].current_service", "7.00"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok := Get(doc.Root, "service_types[1].current_service")
	if !ok || v != "7.00" {
		t.Fatalf("get after set = %v, %v", v, ok)
	}
	if err := Set(doc.Root, "service_types[*].current_service", "1"); err == nil {
		t.Fatal("expected wildcard set to fail")
	}
	if err := Set(doc.Root, "nope.field", "1"); err == nil {
		t.Fatal("expected missing parent to fail")
	}
}

func TestDocumentProviderAndClone(t *testing.T) {
	doc := mustParse(t, sample)
	if doc.Provider != "spu" {
		t.Fatalf("provider = %q", doc.Provider)
	}
	cp := doc.Clone()
	if err := Set(cp.Root, "statement.total_amount_due", "0"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := doc.String("statement.total_amount_due"); got != "$10.00" {
		t.Fatalf("clone mutated original: %q", got)
	}
	if got := doc.String("service_types[1].current_service"); got != "6" {
		t.Fatalf("json number should stay textual, got %q", got)
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	if _, err := Decode(strings.NewReader(`[1,2]`)); err != ErrNotObject {
		t.Fatalf("err = %v, want ErrNotObject", err)
	}
}

func TestSegmentsAndLeaf(t *testing.T) {
	segs, err := Segments("services[*].line_item_charges")
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}
	want := []Segment{{Key: "services", List: true}, {Key: "line_item_charges"}}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}
	if _, err := Segments("a..b"); err == nil {
		t.Error("expected error for empty segment")
	}

	for sel, want := range map[string]string{
		"statement.total_amount_due": "total_amount_due",
		"meters[0]":                  "meters",
		"":                           "",
		"a[x]":                       "",
	} {
		if got := Leaf(sel); got != want {
			t.Errorf("Leaf(%q) = %q, want %q", sel, got, want)
		}
	}
}
