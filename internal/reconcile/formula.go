package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
)

// Sign is the coefficient of a formula term.
type Sign int

const (
	Plus  Sign = 1
	Minus Sign = -1
)

// Term is one signed operand of a total formula. Path may contain [*], in
// which case every matched value is summed. With Aliases, Path selects
// objects and each contributes the first alias holding a valid amount.
type Term struct {
	Path    string
	Sign    Sign
	Aliases []string
}

// Add and Sub build terms.
func Add(path string) Term { return Term{Path: path, Sign: Plus} }
func Sub(path string) Term { return Term{Path: path, Sign: Minus} }

// AddFirst sums, per object matched by path, the first valid alias.
func AddFirst(path string, aliases ...string) Term {
	return Term{Path: path, Sign: Plus, Aliases: aliases}
}

// Name is the display path of the term, using the preferred alias.
func (t Term) Name() string {
	if len(t.Aliases) == 0 {
		return t.Path
	}
	return bill.Join(t.Path, t.Aliases[0])
}

// value sums the term's operands in root.
func (t Term) value(root map[string]any) decimal.Decimal {
	v := decimal.Zero
	for _, m := range bill.Select(root, t.Path) {
		if len(t.Aliases) == 0 {
			v = v.Add(money.Parse(m.Value))
			continue
		}
		obj, ok := m.Value.(map[string]any)
		if !ok {
			continue
		}
		if n := firstAmount(obj, t.Aliases); n.Valid {
			v = v.Add(n.Decimal)
		}
	}
	return v
}

// Formula is a signed linear combination of bill fields.
type Formula struct {
	Name  string
	Terms []Term
}

// F builds a formula; the name is derived from the terms when empty.
func F(name string, terms ...Term) Formula {
	f := Formula{Name: name, Terms: terms}
	if f.Name == "" {
		f.Name = f.Expression()
	}
	return f
}

// Evaluate sums the terms against root. Absent operands contribute zero.
func (f Formula) Evaluate(root map[string]any) (decimal.Decimal, []Input) {
	total := decimal.Zero
	inputs := make([]Input, 0, len(f.Terms))
	for _, t := range f.Terms {
		v := t.value(root)
		inputs = append(inputs, Input{Name: t.Name(), Value: v})
		if t.Sign == Minus {
			total = total.Sub(v)
		} else {
			total = total.Add(v)
		}
	}
	return total, inputs
}

// Expression renders the formula, e.g. "statement.previous_balance - statement.payments_applied".
func (f Formula) Expression() string {
	var b strings.Builder
	for i, t := range f.Terms {
		name := t.Name()
		if strings.Contains(name, "[*]") {
			name = "sum(" + name + ")"
		}
		switch {
		case i == 0 && t.Sign == Minus:
			b.WriteString("-")
		case i > 0 && t.Sign == Minus:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(name)
	}
	return b.String()
}
