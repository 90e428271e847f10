package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the absolute difference under which two amounts are equal.
var DefaultTolerance = decimal.New(1, -2)

// Outcome is the three-valued result of a reconciliation check.
type Outcome int

const (
	// Inapplicable means the check could not be evaluated (stated value absent).
	Inapplicable Outcome = iota
	Matched
	Mismatched
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	default:
		return "inapplicable"
	}
}

// IsMatch returns the nullable boolean form used on the wire.
func (o Outcome) IsMatch() *bool {
	var b bool
	switch o {
	case Matched:
		b = true
	case Mismatched:
		b = false
	default:
		return nil
	}
	return &b
}

// MarshalJSON writes true, false or null.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch o {
	case Matched:
		return []byte("true"), nil
	case Mismatched:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (o *Outcome) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "true":
		*o = Matched
	case "false":
		*o = Mismatched
	case "null":
		*o = Inapplicable
	default:
		return fmt.Errorf("money: invalid is_match value %s", b)
	}
	return nil
}

// OutcomeOf converts a decoded is_match value (bool or nil) to an Outcome.
func OutcomeOf(v any) Outcome {
	b, ok := v.(bool)
	switch {
	case !ok:
		return Inapplicable
	case b:
		return Matched
	default:
		return Mismatched
	}
}

// Comparison is the result of comparing a calculated amount to a stated one.
type Comparison struct {
	Difference NullAmount
	Outcome    Outcome
}

// Compare rounds calculated-stated to cents and matches it against tolerance.
// An absent stated value makes the comparison inapplicable rather than failed.
func Compare(calculated decimal.Decimal, stated NullAmount, tolerance decimal.Decimal) Comparison {
	if !stated.Valid {
		return Comparison{Outcome: Inapplicable}
	}
	diff := calculated.Sub(stated.Decimal).Round(2)
	out := Comparison{Difference: Amount(diff), Outcome: Mismatched}
	if diff.Abs().LessThanOrEqual(tolerance) {
		out.Outcome = Matched
	}
	return out
}
