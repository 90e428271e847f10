package reconcile

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

// Annotation keys attached to bill sections.
const (
	KeyLineItems = "line_item_charges_validation"
	KeyTotal     = "total_amount_validation"
)

// Input is one operand that went into a calculated amount.
type Input struct {
	Name  string
	Value decimal.Decimal
}

// Annotation is the outcome of one reconciliation check. It lives in
// Result's side map and is only rendered into the tree by Result.Merge.
type Annotation struct {
	Check string // key the annotation is rendered under
	Path  string // path of the annotated object, "" for the root

	CalculatedKey string
	StatedKey     string
	Calculated    decimal.Decimal
	Stated        money.NullAmount
	Difference    money.NullAmount
	Outcome       money.Outcome

	// Formula names the total formula that produced Outcome.
	Formula   string
	Attempted []string
	Inputs    []Input
	Excluded  []string
	Reason    string
}

// ID is the stable side-map key: the annotated object's path plus the check key.
func (a Annotation) ID() string {
	return bill.Join(a.Path, a.Check)
}

// Fields renders the annotation in its wire shape.
func (a Annotation) Fields() map[string]any {
	out := map[string]any{
		a.CalculatedKey: number(a.Calculated),
		a.StatedKey:     nullNumber(a.Stated),
		"difference":    nullNumber(a.Difference),
		"is_match":      isMatch(a.Outcome),
	}
	if a.Reason != "" {
		out["reason"] = a.Reason
	}
	if a.Formula != "" {
		out["formula"] = a.Formula
	}
	if len(a.Attempted) > 0 {
		attempted := make([]any, len(a.Attempted))
		for i, s := range a.Attempted {
			attempted[i] = s
		}
		out["formulas_attempted"] = attempted
	}
	if len(a.Inputs) > 0 {
		inputs := make(map[string]any, len(a.Inputs))
		for _, in := range a.Inputs {
			inputs[in.Name] = number(in.Value)
		}
		out["inputs"] = inputs
	}
	if len(a.Excluded) > 0 {
		excluded := make([]any, len(a.Excluded))
		for i, s := range a.Excluded {
			excluded[i] = s
		}
		out["excluded_items"] = excluded
	}
	return out
}

// MarshalJSON writes the wire shape.
func (a Annotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Fields())
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func nullNumber(n money.NullAmount) any {
	if !n.Valid {
		return nil
	}
	return number(n.Decimal)
}

func isMatch(o money.Outcome) any {
	if b := o.IsMatch(); b != nil {
		return *b
	}
	return nil
}

// Correction records a field the engine rewrote in place.
type Correction struct {
	Path   string `json:"path"`
	Field  string `json:"field"`
	Old    string `json:"old"`
	New    string `json:"new"`
	Reason string `json:"reason"`
}

// Result holds every annotation produced for one document.
type Result struct {
	Provider    string
	Tolerance   decimal.Decimal
	Corrections []Correction

	annotations map[string]Annotation
	order       []string
}

func newResult(provider string, tol decimal.Decimal) *Result {
	return &Result{
		Provider:    provider,
		Tolerance:   tol,
		annotations: make(map[string]Annotation),
	}
}

// put stores an annotation, replacing any earlier one with the same ID.
func (r *Result) put(a Annotation) {
	id := a.ID()
	if _, ok := r.annotations[id]; !ok {
		r.order = append(r.order, id)
	}
	r.annotations[id] = a
}

// Annotations returns annotations in the order the checks ran.
func (r *Result) Annotations() []Annotation {
	out := make([]Annotation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.annotations[id])
	}
	return out
}

// Annotation looks up one annotation by ID.
func (r *Result) Annotation(id string) (Annotation, bool) {
	a, ok := r.annotations[id]
	return a, ok
}

// Counts tallies outcomes.
func (r *Result) Counts() (matched, mismatched, inapplicable int) {
	for _, a := range r.annotations {
		switch a.Outcome {
		case money.Matched:
			matched++
		case money.Mismatched:
			mismatched++
		default:
			inapplicable++
		}
	}
	return
}

// Merge returns a deep copy of the tree with every annotation inserted as a
// key on its object. Existing keys other than annotation keys are never touched.
func (r *Result) Merge(doc *bill.Document) map[string]any {
	out := bill.DeepCopy(doc.Root).(map[string]any)
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	for _, id := range ids {
		a := r.annotations[id]
		obj, ok := bill.Object(out, a.Path)
		if !ok {
			obj = out
		}
		obj[a.Check] = a.Fields()
	}
	return out
}
