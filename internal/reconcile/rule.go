package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

// LineItemCheck reconciles line items against a stated subtotal, once per container.
type LineItemCheck struct {
	Key string // annotation key, KeyLineItems when empty

	// Containers selects the objects checked independently ("" is the root).
	Containers string
	// Items is relative to each container and may select several lists.
	Items string
	// Stated lists aliases, relative to the container, for the stated subtotal.
	Stated []string
	// At is the annotated object relative to the container ("" is the container).
	At string

	AmountFields []string
	Exclude      ExcludeFunc
	// RepairSplitCharges enables the first-unit split-charge repair.
	RepairSplitCharges bool
}

// TotalCheck reconciles statement fields against the total amount due.
// Formulas are alternatives tried in order; the first that matches wins.
type TotalCheck struct {
	Key      string // annotation key, KeyTotal when empty
	At       string
	Target   []string
	Formulas []Formula
}

// Step mutates a document before checks run and reports what it changed.
type Step struct {
	Name  string
	Apply func(root map[string]any) []Correction
}

// Rule is the reconciliation recipe for one provider.
type Rule struct {
	Provider    constants.Provider
	Description string
	// Tolerance overrides the engine tolerance when non-zero.
	Tolerance decimal.Decimal

	Prepare   []Step
	LineItems []LineItemCheck
	Total     *TotalCheck
}

func (c LineItemCheck) key() string {
	if c.Key == "" {
		return KeyLineItems
	}
	return c.Key
}

func (c TotalCheck) key() string {
	if c.Key == "" {
		return KeyTotal
	}
	return c.Key
}

// Apply runs the rule against doc and returns its annotations. Corrections
// are written into doc.Root; annotations are not.
func (r Rule) Apply(doc *bill.Document, tolerance decimal.Decimal) *Result {
	if !r.Tolerance.IsZero() {
		tolerance = r.Tolerance
	}
	res := newResult(string(r.Provider), tolerance)
	for _, step := range r.Prepare {
		res.Corrections = append(res.Corrections, step.Apply(doc.Root)...)
	}
	for _, chk := range r.LineItems {
		chk.run(doc.Root, tolerance, res)
	}
	if r.Total != nil {
		r.Total.run(doc.Root, tolerance, res)
	}
	return res
}

func (c LineItemCheck) run(root map[string]any, tol decimal.Decimal, res *Result) {
	containers := []bill.Match{{Path: "", Value: root}}
	if c.Containers != "" {
		containers = bill.Select(root, c.Containers)
	}
	for _, ct := range containers {
		obj, ok := ct.Value.(map[string]any)
		if !ok {
			continue
		}

		lists := bill.Select(obj, c.Items)
		var items []any
		found := false
		for _, l := range lists {
			list, ok := l.Value.([]any)
			if !ok {
				continue
			}
			found = true
			if c.RepairSplitCharges {
				repaired, corr := RepairSplitCharges(list)
				if len(corr) > 0 && bill.Set(obj, l.Path, repaired) == nil {
					for i := range corr {
						corr[i].Path = bill.Join(ct.Path, l.Path)
					}
					res.Corrections = append(res.Corrections, corr...)
					list = repaired
				}
			}
			items = append(items, list...)
		}

		stated := firstAmount(obj, c.Stated)
		at := bill.Join(ct.Path, c.At)
		if _, ok := bill.Object(root, at); !ok {
			at = ct.Path
		}

		a := Annotation{
			Check:         c.key(),
			Path:          at,
			CalculatedKey: "sum_line_items",
			StatedKey:     "stated_subtotal",
			Stated:        stated,
		}
		if !found {
			a.Outcome = money.Inapplicable
			a.Reason = "line items absent"
			res.put(a)
			continue
		}

		sum, excluded := sumLineItems(items, c.AmountFields, c.Exclude)
		cmp := money.Compare(sum, stated, tol)
		a.Calculated = sum
		a.Difference = cmp.Difference
		a.Outcome = cmp.Outcome
		a.Excluded = excluded
		switch cmp.Outcome {
		case money.Matched:
			a.Reason = "line items reconcile with stated subtotal"
		case money.Mismatched:
			a.Reason = fmt.Sprintf("line items differ from stated subtotal by %s", cmp.Difference)
		default:
			a.Reason = "stated subtotal absent"
		}
		res.put(a)
	}
}

func (c TotalCheck) run(root map[string]any, tol decimal.Decimal, res *Result) {
	at := c.At
	if _, ok := bill.Object(root, at); !ok {
		at = ""
	}
	target := firstAmount(root, c.Target)
	a := Annotation{
		Check:         c.key(),
		Path:          at,
		CalculatedKey: "calculated_total",
		StatedKey:     "stated_total",
		Stated:        target,
	}
	if len(c.Formulas) == 0 {
		a.Reason = "no formula configured"
		res.put(a)
		return
	}

	var first Annotation
	for i, f := range c.Formulas {
		calc, inputs := f.Evaluate(root)
		cmp := money.Compare(calc, target, tol)
		cur := a
		cur.Calculated = calc
		cur.Inputs = inputs
		cur.Difference = cmp.Difference
		cur.Outcome = cmp.Outcome
		cur.Formula = f.Name
		a.Attempted = append(a.Attempted, f.Name)
		cur.Attempted = append([]string(nil), a.Attempted...)
		if i == 0 {
			first = cur
		}
		if cmp.Outcome == money.Matched {
			cur.Reason = "total amount due reconciles using " + f.Name
			res.put(cur)
			return
		}
		if cmp.Outcome == money.Inapplicable {
			break
		}
	}

	first.Attempted = a.Attempted
	if first.Outcome == money.Inapplicable {
		first.Reason = "total amount due absent"
	} else {
		first.Reason = fmt.Sprintf("no formula reconciles with total amount due (%s differs by %s)", first.Formula, first.Difference)
	}
	res.put(first)
}

func firstAmount(obj map[string]any, aliases []string) money.NullAmount {
	for _, p := range aliases {
		v, ok := bill.Get(obj, p)
		if !ok {
			continue
		}
		if n := money.ParseNull(v); n.Valid {
			return n
		}
	}
	return money.NullAmount{}
}
