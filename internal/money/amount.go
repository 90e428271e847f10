// Package money parses the currency-like values found in extracted bills and
// compares computed totals against stated ones.
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// NullAmount is an amount that may be absent, in the manner of sql.NullFloat64.
// Absent and unparsable inputs are both represented as Valid == false.
type NullAmount struct {
	Decimal decimal.Decimal
	Valid   bool
}

// Amount returns a valid NullAmount.
func Amount(d decimal.Decimal) NullAmount {
	return NullAmount{Decimal: d, Valid: true}
}

// OrZero returns the amount, or zero when absent.
func (n NullAmount) OrZero() decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

func (n NullAmount) String() string {
	if !n.Valid {
		return "null"
	}
	return n.Decimal.StringFixed(2)
}

// MarshalJSON writes a JSON number with two decimals, or null.
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.StringFixed(2)), nil
}

func (n *NullAmount) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*n = ParseNull(v)
	return nil
}

// Parse converts a currency-like value to a decimal for use in sums.
// nil, empty and unparsable values yield zero.
func Parse(v any) decimal.Decimal {
	return ParseNull(v).OrZero()
}

// ParseNull converts a currency-like value for use as a comparison target.
// nil, empty and unparsable values yield an invalid NullAmount.
//
// Accepted string forms: "$1,234.56", "-$10.00", "$-10.00", " 12 ", "(10.00)",
// "10.00CR" and "10.00-" (the last three are credits).
func ParseNull(v any) NullAmount {
	switch t := v.(type) {
	case nil:
		return NullAmount{}
	case NullAmount:
		return t
	case decimal.Decimal:
		return Amount(t)
	case json.Number:
		return parseString(t.String())
	case string:
		return parseString(t)
	case float64:
		return Amount(decimal.NewFromFloat(t))
	case float32:
		return Amount(decimal.NewFromFloat32(t))
	case int:
		return Amount(decimal.NewFromInt(int64(t)))
	case int32:
		return Amount(decimal.NewFromInt32(t))
	case int64:
		return Amount(decimal.NewFromInt(t))
	default:
		return NullAmount{}
	}
}

func parseString(s string) NullAmount {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "n/a") {
		return NullAmount{}
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if upper := strings.ToUpper(s); strings.HasSuffix(upper, "CR") {
		negative = !negative
		s = strings.TrimSpace(s[:len(s)-2])
	}
	if strings.HasSuffix(s, "-") {
		negative = !negative
		s = strings.TrimSpace(s[:len(s)-1])
	}

	s = strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ', '\t', '\u00a0':
			return -1
		}
		return r
	}, s)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" || s == "-" {
		return NullAmount{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return NullAmount{}
	}
	if negative {
		d = d.Neg()
	}
	return Amount(d)
}

// Format renders an amount the way sanitized extraction output stores it.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
