package reconcile

import (
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

// Passed reduces a result to the routing decision: false iff any check
// mismatched. Inapplicable checks do not fail a bill.
func (r *Result) Passed() bool {
	for _, a := range r.annotations {
		if a.Outcome == money.Mismatched {
			return false
		}
	}
	return true
}

// Failures returns the mismatched annotations in check order.
func (r *Result) Failures() []Annotation {
	var out []Annotation
	for _, id := range r.order {
		if a := r.annotations[id]; a.Outcome == money.Mismatched {
			out = append(out, a)
		}
	}
	return out
}

// AnnotationSelectors lists where the rule's annotations appear in a merged
// tree, including the root fallback used when the annotated object is absent.
func (r Rule) AnnotationSelectors() []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, c := range r.LineItems {
		add(bill.Join(bill.Join(c.Containers, c.At), c.key()))
		add(bill.Join(c.Containers, c.key()))
	}
	if r.Total != nil {
		add(bill.Join(r.Total.At, r.Total.key()))
		add(r.Total.key())
	}
	return out
}

// CheckValidationPassed evaluates the gate over a tree that already carries
// annotations, such as a stored merged document. Only the rule's own
// annotation locations are read; the tree is not modified.
func CheckValidationPassed(rule Rule, tree map[string]any) bool {
	for _, sel := range rule.AnnotationSelectors() {
		for _, m := range bill.Select(tree, sel) {
			obj, ok := m.Value.(map[string]any)
			if !ok {
				continue
			}
			if money.OutcomeOf(obj["is_match"]) == money.Mismatched {
				return false
			}
		}
	}
	return true
}
