package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/utility-bills/internal/money"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// fieldSynonyms renames keys models commonly produce to the names rules read.
// When several synonyms of one name are present the earliest entry wins.
var fieldSynonyms = []struct{ from, to string }{
	{"current_service_amount", "current_service"},
	{"total_due", "total_amount_due"},
	{"amount_due", "total_amount_due"},
	{"previous_balance_due", "previous_balance"},
	{"line_items_charges", "line_item_charges"},
}

// SanitizeBillJSON is the lenient pass applied when a response fails schema
// validation. Recursively it
//   - renames known synonyms (current_service_amount -> current_service)
//   - drops null and empty-string values
//   - trims strings
//   - rewrites parseable amounts as two-decimal numbers
//
// Unparseable amounts are left in place; the reconciler treats them as absent.
func SanitizeBillJSON(raw []byte, rule reconcile.Rule, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	s := sanitizer{amountKeys: map[string]bool{"amount": true, "charge": true}}
	for _, k := range rule.AmountFieldNames() {
		s.amountKeys[k] = true
	}
	s.object("", m)

	if _, ok := m["provider"]; !ok && rule.Provider != "" {
		m["provider"] = string(rule.Provider)
		s.note("provider(set)")
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, s.dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(s.dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", s.dropped)
	}
	return out, s.dropped, nil
}

type sanitizer struct {
	amountKeys map[string]bool
	dropped    []string
}

func (s *sanitizer) note(msg string) {
	s.dropped = append(s.dropped, msg)
}

func (s *sanitizer) object(prefix string, m map[string]any) {
	for _, syn := range fieldSynonyms {
		v, ok := m[syn.from]
		if !ok {
			continue
		}
		if blank(m[syn.to]) {
			m[syn.to] = v
		}
		delete(m, syn.from)
		s.note(prefix + syn.from + "->" + syn.to)
	}

	for k, v := range m {
		path := prefix + k
		switch t := v.(type) {
		case nil:
			delete(m, k)
			s.note(path + "(null)")
		case string:
			trimmed := strings.TrimSpace(t)
			if trimmed == "" {
				delete(m, k)
				s.note(path + "(empty)")
				continue
			}
			if s.amountKeys[k] {
				if n := money.ParseNull(trimmed); n.Valid {
					m[k] = json.Number(money.Format(n.Decimal))
					continue
				}
			}
			m[k] = trimmed
		case json.Number:
			if s.amountKeys[k] {
				if n := money.ParseNull(t); n.Valid {
					m[k] = json.Number(money.Format(n.Decimal))
				}
			}
		case map[string]any:
			s.object(path+".", t)
		case []any:
			for i, e := range t {
				if obj, ok := e.(map[string]any); ok {
					s.object(fmt.Sprintf("%s[%d].", path, i), obj)
				}
			}
		}
	}
}

// blank reports whether v is absent, null or an empty string.
func blank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
