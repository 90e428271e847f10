package reconcile

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/internal/money"
)

// DefaultAmountFields are the aliases tried, in order, for a line item's amount.
var DefaultAmountFields = []string{"amount", "charge"}

// labelFields are the keys that carry a line item's printed label.
var labelFields = []string{"category", "name", "description", "charge_type"}

// ExcludeFunc reports whether a line item should be left out of a sum.
type ExcludeFunc func(item map[string]any) bool

// SumLineItems adds the first parseable amount alias of every item.
// Missing or unparsable amounts count as zero. Scalar items are taken as amounts.
func SumLineItems(items []any, amountFields []string, exclude ExcludeFunc) decimal.Decimal {
	sum, _ := sumLineItems(items, amountFields, exclude)
	return sum
}

func sumLineItems(items []any, amountFields []string, exclude ExcludeFunc) (decimal.Decimal, []string) {
	if len(amountFields) == 0 {
		amountFields = DefaultAmountFields
	}
	sum := decimal.Zero
	var excluded []string
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			sum = sum.Add(money.Parse(it))
			continue
		}
		if exclude != nil && exclude(obj) {
			excluded = append(excluded, ItemLabel(obj))
			continue
		}
		sum = sum.Add(itemAmount(obj, amountFields))
	}
	return sum, excluded
}

func itemAmount(item map[string]any, fields []string) decimal.Decimal {
	for _, f := range fields {
		if n := money.ParseNull(item[f]); n.Valid {
			return n.Decimal
		}
	}
	return decimal.Zero
}

// ItemLabel returns the first non-empty label of a line item.
func ItemLabel(item map[string]any) string {
	for _, f := range labelFields {
		if s, ok := item[f].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// summaryLabels are rows that bills print inside their charge tables but
// which restate a total rather than add a charge.
var summaryLabels = []string{
	"total",
	"subtotal",
	"sub total",
	"sub-total",
	"grand total",
	"prior balance",
	"previous balance",
	"balance forward",
	"payment lockbox",
	"total due",
	"amount due",
	"total current charges",
}

// summaryPatterns match summary rows by shape ("Subtotal - Sewer",
// "Total Water Charges", "Sewer Total"). A single charge such as
// "Total Water Usage Charge" must not match.
var summaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^sub[\s-]?total\b`),
	regexp.MustCompile(`^total\b.*\b(charges|due|amount|balance|billed)$`),
	regexp.MustCompile(`\btotal$`),
}

// SummaryRowExcluder excludes rows whose label equals a summary label or
// matches a summary pattern, ignoring case, repeated spaces and a trailing
// colon. Extra labels extend the exact set.
func SummaryRowExcluder(extra ...string) ExcludeFunc {
	set := make(map[string]struct{}, len(summaryLabels)+len(extra))
	for _, l := range summaryLabels {
		set[normalizeLabel(l)] = struct{}{}
	}
	for _, l := range extra {
		set[normalizeLabel(l)] = struct{}{}
	}
	return func(item map[string]any) bool {
		for _, f := range labelFields {
			s, ok := item[f].(string)
			if !ok {
				continue
			}
			label := normalizeLabel(s)
			if _, hit := set[label]; hit {
				return true
			}
			for _, re := range summaryPatterns {
				if re.MatchString(label) {
					return true
				}
			}
		}
		return false
	}
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ":")
	return strings.Join(strings.Fields(s), " ")
}

var (
	reFirstUnit = regexp.MustCompile(`(?i)\bfirst\s+unit\b`)
	reUnitsAt   = regexp.MustCompile(`(?i)\bunits?\s*@`)
)

// RepairSplitCharges restores the "N Units @" row that extraction drops from
// tiered sewer tables. It acts only when a "First Unit" row exists, no
// "Units @" row does, and the first-unit row reports usage above one. The
// synthesized row is appended with amount rate*usage + rate and the first-unit
// row's usage is set to 1. Items are returned unchanged when the shape is absent.
func RepairSplitCharges(items []any) ([]any, []Correction) {
	first := -1
	for i, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		label := ItemLabel(obj)
		if reUnitsAt.MatchString(label) {
			return items, nil
		}
		if first < 0 && reFirstUnit.MatchString(label) {
			first = i
		}
	}
	if first < 0 {
		return items, nil
	}
	row := items[first].(map[string]any)
	usage := money.ParseNull(row["usage"])
	if !usage.Valid || usage.Decimal.LessThanOrEqual(decimal.NewFromInt(1)) {
		return items, nil
	}
	rate := money.ParseNull(row["rate"])
	if !rate.Valid {
		rate = money.ParseNull(itemAmount(row, DefaultAmountFields))
	}
	if !rate.Valid || rate.Decimal.IsZero() {
		return items, nil
	}

	amount := rate.Decimal.Mul(usage.Decimal).Add(rate.Decimal)
	synth := map[string]any{
		"category":    fmt.Sprintf("%s Units @ $%s", usage.Decimal.String(), money.Format(rate.Decimal)),
		"usage":       json.Number(usage.Decimal.String()),
		"rate":        money.Format(rate.Decimal),
		"amount":      money.Format(amount),
		"synthesized": true,
	}
	row["usage"] = json.Number("1")

	out := make([]any, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, synth)
	corrections := []Correction{
		{
			Field:  fmt.Sprintf("[%d].usage", first),
			Old:    usage.Decimal.String(),
			New:    "1",
			Reason: "first unit charge covers a single unit",
		},
		{
			Field:  fmt.Sprintf("[%d]", len(items)),
			New:    synth["category"].(string) + " = " + synth["amount"].(string),
			Reason: "units row missing from split charge",
		},
	}
	return out, corrections
}
