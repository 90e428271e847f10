package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

var (
	previousReadingFields = []string{"previous_reading", "start_read", "prev_read"}
	currentReadingFields  = []string{"current_reading", "end_read", "curr_read"}
	multiplierFields      = []string{"multiplier", "usage_multiplier", "meter_multiplier"}

	integralTolerance   = decimal.New(1, -2)
	multiplierTolerance = decimal.New(1, -1)
)

// NormalizeMultiplier infers a meter's multiplier from usage / (current - previous)
// and overwrites the stated multiplier when the implied value is integral and
// the stated one is missing or off by more than 0.1. Reversed readings and
// fractional ratios are left alone.
func NormalizeMultiplier(meter map[string]any) (Correction, bool) {
	prev := firstAmount(meter, previousReadingFields)
	cur := firstAmount(meter, currentReadingFields)
	usage := money.ParseNull(meter["usage"])
	if !prev.Valid || !cur.Valid || !usage.Valid {
		return Correction{}, false
	}

	diff := cur.Decimal.Sub(prev.Decimal)
	if !diff.IsPositive() {
		return Correction{}, false
	}
	implied := usage.Decimal.Div(diff)
	rounded := implied.Round(0)
	if implied.Sub(rounded).Abs().GreaterThan(integralTolerance) {
		return Correction{}, false
	}
	if rounded.LessThan(decimal.NewFromInt(1)) {
		return Correction{}, false
	}

	key := multiplierFields[0]
	stated := money.NullAmount{}
	for _, f := range multiplierFields {
		if _, ok := meter[f]; ok {
			key = f
			stated = money.ParseNull(meter[f])
			break
		}
	}
	if stated.Valid && stated.Decimal.Sub(rounded).Abs().LessThanOrEqual(multiplierTolerance) {
		return Correction{}, false
	}

	old := ""
	if stated.Valid {
		old = stated.Decimal.String()
	}
	meter[key] = rounded.StringFixed(0)
	return Correction{
		Field: key,
		Old:   old,
		New:   rounded.StringFixed(0),
		Reason: fmt.Sprintf("usage %s over reading delta %s implies multiplier %s",
			usage.Decimal.String(), diff.String(), rounded.StringFixed(0)),
	}, true
}

// CorrectMultipliers applies NormalizeMultiplier to every meter matched by selector.
func CorrectMultipliers(selector string) Step {
	return Step{
		Name: "correct_multipliers",
		Apply: func(root map[string]any) []Correction {
			var out []Correction
			for _, m := range bill.Select(root, selector) {
				meter, ok := m.Value.(map[string]any)
				if !ok {
					continue
				}
				if c, ok := NormalizeMultiplier(meter); ok {
					c.Path = m.Path
					out = append(out, c)
				}
			}
			return out
		},
	}
}
