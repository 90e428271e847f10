package export

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/money"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// Check is one annotation flattened for a report.
type Check struct {
	Annotation string
	Outcome    string
	Calculated string
	Stated     string
	Difference string
	Formula    string
}

// Row is one reconciled bill.
type Row struct {
	File         string
	Provider     string
	Status       string
	Passed       bool
	Matched      int
	Mismatched   int
	Inapplicable int
	Corrections  int
	FinishedAt   time.Time
	Checks       []Check
}

// RowFromResult builds a row straight from an engine result.
func RowFromResult(file string, res *reconcile.Result) Row {
	passed := res.Passed()
	r := Row{
		File:        file,
		Provider:    res.Provider,
		Status:      string(constants.RouteStatus(passed)),
		Passed:      passed,
		Corrections: len(res.Corrections),
		FinishedAt:  time.Now().UTC(),
	}
	r.Matched, r.Mismatched, r.Inapplicable = res.Counts()
	for _, a := range res.Annotations() {
		r.Checks = append(r.Checks, Check{
			Annotation: a.ID(),
			Outcome:    a.Outcome.String(),
			Calculated: a.Calculated.StringFixed(2),
			Stated:     nullString(a.Stated),
			Difference: nullString(a.Difference),
			Formula:    a.Formula,
		})
	}
	return r
}

// annotation key -> (calculated key, stated key)
var checkValueKeys = map[string][2]string{
	reconcile.KeyLineItems: {"sum_line_items", "stated_subtotal"},
	reconcile.KeyTotal:     {"calculated_total", "stated_total"},
}

// ChecksFromTree recovers the checks of a stored merged tree, in path order.
func ChecksFromTree(tree map[string]any) []Check {
	var out []Check
	var walk func(path string, v any)
	walk = func(path string, v any) {
		switch node := v.(type) {
		case map[string]any:
			keys := make([]string, 0, len(node))
			for k := range node {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if vk, ok := checkValueKeys[k]; ok {
					if obj, ok := node[k].(map[string]any); ok {
						out = append(out, checkFromObject(bill.Join(path, k), obj, vk))
						continue
					}
				}
				walk(bill.Join(path, k), node[k])
			}
		case []any:
			for i, item := range node {
				walk(path+"["+strconv.Itoa(i)+"]", item)
			}
		}
	}
	walk("", tree)
	return out
}

func checkFromObject(id string, obj map[string]any, keys [2]string) Check {
	c := Check{
		Annotation: id,
		Outcome:    money.OutcomeOf(obj["is_match"]).String(),
		Calculated: amountString(obj[keys[0]]),
		Stated:     amountString(obj[keys[1]]),
		Difference: amountString(obj["difference"]),
	}
	if f, ok := obj["formula"].(string); ok {
		c.Formula = f
	}
	return c
}

func amountString(v any) string {
	return nullString(money.ParseNull(v))
}

func nullString(n money.NullAmount) string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.StringFixed(2)
}

// RowFromStored builds a row from a persisted annotated tree.
func RowFromStored(sourcePath, provider, status string, annotated json.RawMessage, finished time.Time) (Row, error) {
	r := Row{
		File:       filepath.Base(sourcePath),
		Provider:   provider,
		Status:     status,
		FinishedAt: finished,
	}
	r.Passed = status == string(constants.JobStatusProcessed)
	if len(annotated) == 0 {
		return r, nil
	}
	doc, err := bill.Parse(annotated)
	if err != nil {
		return r, err
	}
	r.Checks = ChecksFromTree(doc.Root)
	for _, c := range r.Checks {
		switch c.Outcome {
		case money.Matched.String():
			r.Matched++
		case money.Mismatched.String():
			r.Mismatched++
		default:
			r.Inapplicable++
		}
	}
	return r, nil
}
