package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/llm"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
	"github.com/joseph-ayodele/utility-bills/internal/render"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

const (
	laceyMatched    = `{"provider":"lacey","statement":{"previous_balance":"100.00","payments_applied":"-100.00","current_billing":"50.00","total_amount_due":"50.00"}}`
	laceyMismatched = `{"provider":"lacey","statement":{"previous_balance":"100.00","payments_applied":"-100.00","current_billing":"50.00","total_amount_due":"60.00"}}`
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type fakeRenderer struct {
	pages []render.Page
	err   error
}

func (f *fakeRenderer) Render(context.Context, string, string) ([]render.Page, error) {
	return f.pages, f.err
}

type fakeExtractor struct {
	payload   string
	detected  string
	detectErr error
	detects   int
}

func (f *fakeExtractor) DetectProvider(context.Context, llm.DetectRequest) (string, error) {
	f.detects++
	return f.detected, f.detectErr
}

func (f *fakeExtractor) ExtractBill(_ context.Context, req llm.ExtractRequest) (llm.Extraction, error) {
	doc, err := bill.Parse([]byte(f.payload))
	if err != nil {
		return llm.Extraction{}, err
	}
	return llm.Extraction{Document: doc, Raw: []byte(f.payload), Model: "test-model"}, nil
}

type fixture struct {
	store *repository.MemoryStore
	proc  *Processor
	ext   *fakeExtractor
	out   string
	src   string
}

func newFixture(t *testing.T, folder, payload string) *fixture {
	t.Helper()
	root := t.TempDir()
	inbox := filepath.Join(root, "inbox", folder)
	if err := os.MkdirAll(inbox, 0o755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(inbox, "march.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4 test"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(root, "out")
	store := repository.NewMemoryStore()
	ext := &fakeExtractor{payload: payload}
	router := NewRouter(filepath.Join(out, "processed"), filepath.Join(out, "unprocessed"), false, discard())
	proc := NewProcessor(discard(),
		&fakeRenderer{pages: []render.Page{{Number: 1, Path: filepath.Join(root, "p-1.png")}}},
		ext, reconcile.NewEngine(discard()), router, store, store)
	return &fixture{store: store, proc: proc, ext: ext, out: out, src: src}
}

func (f *fixture) register(t *testing.T) uuid.UUID {
	t.Helper()
	file, _, err := f.store.UpsertByHash(context.Background(), f.src, filepath.Base(f.src), 13, []byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	return file.ID
}

func TestProcessRoutesByGate(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantStatus constants.JobStatus
		wantDir    string
	}{
		{"matched", laceyMatched, constants.JobStatusProcessed, "processed"},
		{"mismatched", laceyMismatched, constants.JobStatusUnprocessed, "unprocessed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "lacey", tt.payload)
			id := f.register(t)

			out, err := f.proc.Process(context.Background(), id, false)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if out.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", out.Status, tt.wantStatus)
			}
			if f.ext.detects != 0 {
				t.Fatalf("folder name should resolve the provider without detection")
			}
			wantPDF := filepath.Join(f.out, tt.wantDir, "lacey", "march.pdf")
			if out.RoutedPath != wantPDF {
				t.Fatalf("routed = %s, want %s", out.RoutedPath, wantPDF)
			}
			if _, err := os.Stat(f.src); err != nil {
				t.Fatalf("source should be kept when not moving: %v", err)
			}

			b, err := os.ReadFile(filepath.Join(f.out, tt.wantDir, "lacey", "march.json"))
			if err != nil {
				t.Fatal(err)
			}
			var tree map[string]any
			if err := json.Unmarshal(b, &tree); err != nil {
				t.Fatal(err)
			}
			stmt, _ := tree["statement"].(map[string]any)
			if _, ok := stmt[reconcile.KeyTotal]; !ok {
				t.Fatalf("sidecar lacks %s: %s", reconcile.KeyTotal, b)
			}

			file, err := f.store.GetByID(context.Background(), id)
			if err != nil {
				t.Fatal(err)
			}
			if file.Status != string(tt.wantStatus) {
				t.Fatalf("file status = %s", file.Status)
			}
			if file.Provider == nil || *file.Provider != "lacey" {
				t.Fatalf("file provider = %v", file.Provider)
			}
		})
	}
}

func TestProcessSkipsTerminalUnlessForced(t *testing.T) {
	f := newFixture(t, "lacey", laceyMatched)
	id := f.register(t)
	ctx := context.Background()
	if _, err := f.proc.Process(ctx, id, false); err != nil {
		t.Fatal(err)
	}
	if _, err := f.proc.Process(ctx, id, false); !errors.Is(err, ErrSkipped) {
		t.Fatalf("second run err = %v, want ErrSkipped", err)
	}
	out, err := f.proc.Process(ctx, id, true)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if out.RoutedPath != filepath.Join(f.out, "processed", "lacey", "march.pdf") {
		t.Fatalf("identical content should reuse its name, got %s", out.RoutedPath)
	}
}

func TestProcessDetectsProviderWhenFolderUnknown(t *testing.T) {
	f := newFixture(t, "scans", laceyMatched)
	f.ext.detected = "City of Lacey"
	id := f.register(t)
	out, err := f.proc.Process(context.Background(), id, false)
	if err != nil {
		t.Fatal(err)
	}
	if f.ext.detects != 1 || out.Provider != "lacey" {
		t.Fatalf("detects = %d provider = %q", f.ext.detects, out.Provider)
	}
}

func TestProcessFailureMarksFailed(t *testing.T) {
	f := newFixture(t, "scans", laceyMatched)
	f.ext.detectErr = errors.New("model unavailable")
	id := f.register(t)
	out, err := f.proc.Process(context.Background(), id, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if out.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s", out.Status)
	}
	file, _ := f.store.GetByID(context.Background(), id)
	if file.Status != string(constants.JobStatusFailed) {
		t.Fatalf("file status = %s", file.Status)
	}
}

func TestRouterSuffixesConflictingNames(t *testing.T) {
	root := t.TempDir()
	r := NewRouter(filepath.Join(root, "p"), filepath.Join(root, "u"), true, discard())
	dir := r.Dir("kent", true)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bill.pdf"), []byte("other"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(root, "bill.pdf")
	if err := os.WriteFile(src, []byte("mine"), 0o644); err != nil {
		t.Fatal(err)
	}
	dest, err := r.Route(src, "kent", true, map[string]any{"provider": "kent"})
	if err != nil {
		t.Fatal(err)
	}
	if dest != filepath.Join(dir, "bill-1.pdf") {
		t.Fatalf("dest = %s", dest)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source should be moved")
	}
	if _, err := os.Stat(filepath.Join(dir, "bill-1.json")); err != nil {
		t.Fatalf("sidecar missing: %v", err)
	}
}

func TestReconcileFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lacey")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "bill.json")
	body := `{"statement":{"previous_balance":"100.00","payments_applied":"-100.00","current_billing":"50.00","total_amount_due":"60.00"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	rep, err := ReconcileFile(context.Background(), reconcile.NewEngine(discard()), path)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Provider != "lacey" || rep.Status != constants.JobStatusUnprocessed {
		t.Fatalf("provider = %q status = %s", rep.Provider, rep.Status)
	}
}
