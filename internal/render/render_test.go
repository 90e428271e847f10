package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeRunner writes n page images where pdftoppm would.
type fakeRunner struct {
	pages int
	calls int
	args  []string
	err   error
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	f.calls++
	f.args = args
	if f.err != nil {
		return nil, []byte("Syntax Error: broken pdf"), f.err
	}
	prefix := args[len(args)-1]
	for i := 1; i <= f.pages; i++ {
		name := fmt.Sprintf("%s-%02d.png", prefix, i)
		if err := os.WriteFile(name, []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func writePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bill.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRender_OrdersAndCaps(t *testing.T) {
	runner := &fakeRunner{pages: 12}
	r := NewRenderer(Config{CacheDir: t.TempDir(), MaxPages: 10}, runner, nil)

	pages, err := r.Render(context.Background(), writePDF(t), "abc")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(pages) != 10 {
		t.Fatalf("pages = %d, want 10", len(pages))
	}
	for i, p := range pages {
		if p.Number != i+1 {
			t.Errorf("page %d has number %d", i, p.Number)
		}
	}
	if got := filepath.Base(pages[9].Path); got != "page-10.png" {
		t.Errorf("last page = %s, want page-10.png", got)
	}
}

func TestRender_UsesCache(t *testing.T) {
	runner := &fakeRunner{pages: 2}
	r := NewRenderer(Config{CacheDir: t.TempDir()}, runner, nil)
	pdf := writePDF(t)

	for i := 0; i < 2; i++ {
		if _, err := r.Render(context.Background(), pdf, ""); err != nil {
			t.Fatalf("Render #%d: %v", i, err)
		}
	}
	if runner.calls != 1 {
		t.Errorf("runner calls = %d, want 1", runner.calls)
	}
}

func TestRender_Errors(t *testing.T) {
	r := NewRenderer(Config{CacheDir: t.TempDir()}, &fakeRunner{err: errors.New("exit status 1")}, nil)
	if _, err := r.Render(context.Background(), writePDF(t), "h1"); err == nil {
		t.Error("expected pdftoppm failure")
	}

	r = NewRenderer(Config{CacheDir: t.TempDir()}, &fakeRunner{pages: 0}, nil)
	if _, err := r.Render(context.Background(), writePDF(t), "h2"); err == nil {
		t.Error("expected error when no pages are produced")
	}

	if _, err := r.Render(context.Background(), "scan.png", "h3"); err == nil {
		t.Error("expected non-pdf input to be rejected")
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("HashFile = %s, want %s", got, want)
	}
}
