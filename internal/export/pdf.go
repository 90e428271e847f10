package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/joseph-ayodele/utility-bills/internal/money"
)

// ProviderTotals aggregates rows for one provider.
type ProviderTotals struct {
	Provider    string
	Bills       int
	Passed      int
	Failed      int
	Mismatches  int
	Corrections int
}

// Summarize groups rows by provider, sorted by provider.
func Summarize(rows []Row) []ProviderTotals {
	byProvider := map[string]*ProviderTotals{}
	for _, r := range rows {
		t, ok := byProvider[r.Provider]
		if !ok {
			t = &ProviderTotals{Provider: r.Provider}
			byProvider[r.Provider] = t
		}
		t.Bills++
		if r.Passed {
			t.Passed++
		} else {
			t.Failed++
		}
		t.Mismatches += r.Mismatched
		t.Corrections += r.Corrections
	}
	out := make([]ProviderTotals, 0, len(byProvider))
	for _, t := range byProvider {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out
}

// PDFSummary renders per-provider totals followed by the bills that failed.
func PDFSummary(rows []Row, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Utility Bill Reconciliation")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generated.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Bills: %d", len(rows)))
	pdf.Ln(9)

	widths := []float64{50, 24, 24, 24, 30, 30}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Provider", "Bills", "Passed", "Failed", "Mismatches", "Corrections"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, t := range Summarize(rows) {
		pdf.CellFormat(widths[0], 6, tr(t.Provider), "1", 0, "L", false, 0, "")
		for i, n := range []int{t.Bills, t.Passed, t.Failed, t.Mismatches, t.Corrections} {
			pdf.CellFormat(widths[i+1], 6, fmt.Sprintf("%d", n), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var failures []Row
	for _, r := range rows {
		if !r.Passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Needs review")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for _, r := range failures {
			pdf.SetFont("Arial", "B", 9)
			pdf.MultiCell(190, 5, tr(fmt.Sprintf("%s (%s)", r.File, r.Provider)), "", "L", false)
			pdf.SetFont("Arial", "", 9)
			for _, c := range r.Checks {
				if c.Outcome != money.Mismatched.String() {
					continue
				}
				line := fmt.Sprintf("  %s: calculated %s, stated %s, difference %s",
					c.Annotation, c.Calculated, c.Stated, c.Difference)
				pdf.MultiCell(190, 5, tr(line), "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf write: %w", err)
	}
	return buf.Bytes(), nil
}
