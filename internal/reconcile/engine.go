package reconcile

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
	"github.com/joseph-ayodele/utility-bills/internal/observability/metrics"
)

// Engine selects a provider rule and applies it. It holds no per-document
// state, so one Engine may reconcile many documents concurrently as long as
// each document is owned by a single goroutine.
type Engine struct {
	registry  *Registry
	tolerance decimal.Decimal
	logger    *slog.Logger
}

type Option func(*Engine)

// WithTolerance sets the default tolerance for rules that do not set one.
func WithTolerance(tol decimal.Decimal) Option {
	return func(e *Engine) {
		if tol.IsPositive() {
			e.tolerance = tol
		}
	}
}

// WithRegistry replaces the built-in rule registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		registry:  DefaultRegistry(),
		tolerance: money.DefaultTolerance,
		logger:    logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Registry returns the engine's rules.
func (e *Engine) Registry() *Registry { return e.registry }

// Reconcile applies the document's provider rule. Missing or malformed data
// never produces an error; only an unknown provider does.
func (e *Engine) Reconcile(doc *bill.Document) (*Result, error) {
	start := time.Now()
	rule, ok := e.registry.Lookup(doc.Provider)
	if !ok {
		e.logger.Warn("reconcile.unknown_provider", "provider", doc.Provider)
		metrics.ObserveReconcile(doc.Provider, metrics.ResultError, time.Since(start))
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, doc.Provider)
	}

	res := rule.Apply(doc, e.tolerance)
	passed := res.Passed()
	matched, mismatched, inapplicable := res.Counts()

	result := metrics.ResultPassed
	if !passed {
		result = metrics.ResultFailed
	}
	for _, a := range res.Annotations() {
		metrics.IncCheck(res.Provider, a.Check, a.Outcome.String())
		if a.Outcome == money.Mismatched {
			e.logger.Info("reconcile.check.mismatch",
				"provider", res.Provider,
				"annotation", a.ID(),
				"calculated", a.Calculated.StringFixed(2),
				"stated", a.Stated.String(),
				"difference", a.Difference.String(),
				"formula", a.Formula,
			)
		}
	}
	for _, c := range res.Corrections {
		e.logger.Info("reconcile.correction",
			"provider", res.Provider, "path", c.Path, "field", c.Field,
			"old", c.Old, "new", c.New, "reason", c.Reason)
	}
	metrics.AddCorrections(res.Provider, len(res.Corrections))
	metrics.ObserveReconcile(res.Provider, result, time.Since(start))

	e.logger.Info("reconcile.document.ok",
		"provider", res.Provider,
		"passed", passed,
		"matched", matched,
		"mismatched", mismatched,
		"inapplicable", inapplicable,
		"corrections", len(res.Corrections),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Revalidate runs the gate over a previously merged document without
// recomputing any check.
func (e *Engine) Revalidate(doc *bill.Document) (bool, error) {
	rule, ok := e.registry.Lookup(doc.Provider)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownProvider, doc.Provider)
	}
	return CheckValidationPassed(rule, doc.Root), nil
}
