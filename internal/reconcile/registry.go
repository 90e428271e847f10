package reconcile

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/bill"
)

// ErrUnknownProvider is returned when no rule is registered for a provider.
var ErrUnknownProvider = errors.New("reconcile: unknown provider")

// Registry maps providers to rules. It is read-only once built.
type Registry struct {
	rules map[constants.Provider]Rule
	order []constants.Provider
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the built-in provider rules.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(defaultRules()...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// NewRegistry validates and indexes rules.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{rules: make(map[constants.Provider]Rule, len(rules))}
	for _, rule := range rules {
		if rule.Provider == "" {
			return nil, fmt.Errorf("reconcile: rule without provider")
		}
		if _, dup := r.rules[rule.Provider]; dup {
			return nil, fmt.Errorf("reconcile: duplicate rule for %s", rule.Provider)
		}
		if err := validateRule(rule); err != nil {
			return nil, fmt.Errorf("reconcile: rule %s: %w", rule.Provider, err)
		}
		r.rules[rule.Provider] = rule.clone()
		r.order = append(r.order, rule.Provider)
	}
	return r, nil
}

func validateRule(rule Rule) error {
	var paths []string
	for _, c := range rule.LineItems {
		if c.Items == "" {
			return fmt.Errorf("line item check without items selector")
		}
		paths = append(paths, c.Containers, c.Items, c.At)
		paths = append(paths, c.Stated...)
	}
	if t := rule.Total; t != nil {
		if len(t.Target) == 0 || len(t.Formulas) == 0 {
			return fmt.Errorf("total check needs a target and at least one formula")
		}
		paths = append(paths, t.At)
		paths = append(paths, t.Target...)
		for _, f := range t.Formulas {
			for _, term := range f.Terms {
				paths = append(paths, term.Path)
				for _, alias := range term.Aliases {
					paths = append(paths, bill.Join(term.Path, alias))
				}
			}
		}
	}
	for _, p := range paths {
		if err := bill.ValidateSelector(p); err != nil {
			return err
		}
	}
	return nil
}

// clone copies the slices of a rule so registry entries cannot be modified
// through values handed out by Lookup.
func (r Rule) clone() Rule {
	out := r
	out.Prepare = append([]Step(nil), r.Prepare...)
	out.LineItems = make([]LineItemCheck, len(r.LineItems))
	for i, c := range r.LineItems {
		c.Stated = append([]string(nil), c.Stated...)
		c.AmountFields = append([]string(nil), c.AmountFields...)
		out.LineItems[i] = c
	}
	if r.Total != nil {
		t := *r.Total
		t.Target = append([]string(nil), r.Total.Target...)
		t.Formulas = make([]Formula, len(r.Total.Formulas))
		for i, f := range r.Total.Formulas {
			f.Terms = append([]Term(nil), f.Terms...)
			for j := range f.Terms {
				f.Terms[j].Aliases = append([]string(nil), f.Terms[j].Aliases...)
			}
			t.Formulas[i] = f
		}
		out.Total = &t
	}
	return out
}

// Lookup resolves a provider id or free-form name to its rule.
func (r *Registry) Lookup(name string) (Rule, bool) {
	if rule, ok := r.rules[constants.Provider(name)]; ok {
		return rule.clone(), true
	}
	p, ok := constants.CanonicalizeProvider(name)
	if !ok {
		return Rule{}, false
	}
	rule, ok := r.rules[p]
	if !ok {
		return Rule{}, false
	}
	return rule.clone(), true
}

// Providers lists registered providers in registration order.
func (r *Registry) Providers() []constants.Provider {
	return append([]constants.Provider(nil), r.order...)
}

// Rules lists registered rules in registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, r.rules[p].clone())
	}
	return out
}
