package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/entity"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

const mismatchedLacey = `{"provider":"lacey","statement":{"previous_balance":"100.00","payments_applied":"-100.00","current_billing":"50.00","total_amount_due":"60.00"}}`

func reconcileDoc(t *testing.T, payload string) (*bill.Document, *reconcile.Result) {
	t.Helper()
	doc, err := bill.Parse([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	res, err := reconcile.NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil))).Reconcile(doc)
	if err != nil {
		t.Fatal(err)
	}
	return doc, res
}

func TestChecksFromTreeAgreesWithResult(t *testing.T) {
	doc, res := reconcileDoc(t, mismatchedLacey)
	fromResult := RowFromResult("a.pdf", res)
	fromTree := ChecksFromTree(res.Merge(doc))

	if len(fromTree) != len(fromResult.Checks) || len(fromTree) == 0 {
		t.Fatalf("checks: tree %d, result %d", len(fromTree), len(fromResult.Checks))
	}
	want := map[string]Check{}
	for _, c := range fromResult.Checks {
		c.Formula = ""
		want[c.Annotation] = c
	}
	for _, c := range fromTree {
		c.Formula = ""
		if want[c.Annotation] != c {
			t.Errorf("tree check %+v, result check %+v", c, want[c.Annotation])
		}
	}
	if fromResult.Passed || fromResult.Mismatched == 0 {
		t.Fatalf("row = %+v", fromResult)
	}
}

func TestXLSXReportSheets(t *testing.T) {
	_, res := reconcileDoc(t, mismatchedLacey)
	b, err := XLSXReport([]Row{RowFromResult("a.pdf", res)})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	bills, err := f.GetRows(billsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 2 || bills[1][0] != "a.pdf" || bills[1][2] != string(constants.JobStatusUnprocessed) {
		t.Fatalf("bills sheet = %v", bills)
	}
	checks, err := f.GetRows(checksSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(checks) < 2 {
		t.Fatalf("checks sheet = %v", checks)
	}
}

func TestPDFSummary(t *testing.T) {
	_, res := reconcileDoc(t, mismatchedLacey)
	rows := []Row{RowFromResult("a.pdf", res), {File: "b.pdf", Provider: "kent", Passed: true}}
	b, err := PDFSummary(rows, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("not a pdf: %q", b[:8])
	}
	totals := Summarize(rows)
	if len(totals) != 2 || totals[0].Provider != "kent" || totals[1].Failed != 1 {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestServiceRowsFromStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	file, _, err := store.UpsertByHash(ctx, "/inbox/lacey/a.pdf", "a.pdf", 10, []byte{9})
	if err != nil {
		t.Fatal(err)
	}
	job, err := store.Start(ctx, file.ID)
	if err != nil {
		t.Fatal(err)
	}
	doc, res := reconcileDoc(t, mismatchedLacey)
	annotated, _ := json.Marshal(res.Merge(doc))
	if err := store.SetExtracted(ctx, job.ID, "lacey", "m", 1, []byte(mismatchedLacey)); err != nil {
		t.Fatal(err)
	}
	if err := store.Finish(ctx, job.ID, entity.JobOutcome{
		Status:      string(constants.JobStatusUnprocessed),
		Annotated:   annotated,
		Corrections: json.RawMessage(`[]`),
	}); err != nil {
		t.Fatal(err)
	}

	rows, err := NewService(store, store, slog.New(slog.NewTextHandler(io.Discard, nil))).Rows(ctx, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].File != "a.pdf" || rows[0].Provider != "lacey" || rows[0].Passed || rows[0].Mismatched == 0 {
		t.Fatalf("rows = %+v", rows)
	}
}
