package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "kent", "jan.pdf"), "%PDF jan")
	write(t, filepath.Join(root, "kent", "jan-copy.PDF"), "%PDF jan") // same bytes
	write(t, filepath.Join(root, "spu", "feb.pdf"), "%PDF feb")
	write(t, filepath.Join(root, "notes.txt"), "not a bill")
	write(t, filepath.Join(root, ".hidden", "x.pdf"), "%PDF hidden")
	write(t, filepath.Join(root, ".dot.pdf"), "%PDF dot")
	write(t, filepath.Join(root, "processed", "kent", "old.pdf"), "%PDF routed")

	store := repository.NewMemoryStore()
	ing := NewFSIngestor(store, nil, filepath.Join(root, "processed"))

	results, stats, err := ing.IngestDirectory(context.Background(), root)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 3 {
		t.Errorf("matched = %d, want 3", stats.Matched)
	}
	if stats.Registered != 2 || stats.Deduplicated != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want 2 registered, 1 deduplicated", stats)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	files, _ := store.ListByStatus(context.Background())
	if len(files) != 2 {
		t.Errorf("stored files = %d, want 2", len(files))
	}

	// a second pass only deduplicates
	_, stats, err = ing.IngestDirectory(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Registered != 0 || stats.Deduplicated != 3 {
		t.Errorf("second pass stats = %+v", stats)
	}
}

func TestIngestPathRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	write(t, path, "png")
	ing := NewFSIngestor(repository.NewMemoryStore(), nil)
	if _, err := ing.IngestPath(context.Background(), path); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(repository.NewMemoryStore(), nil)
	if _, _, err := ing.IngestDirectory(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		path, dir string
		want      bool
	}{
		{"/a/b/c", "/a/b", true},
		{"/a/b", "/a/b", true},
		{"/a/bc", "/a/b", false},
		{"/a", "/a/b", false},
		{"/a/..b/c", "/a", true},
	}
	for _, tt := range tests {
		if got := within(tt.path, tt.dir); got != tt.want {
			t.Errorf("within(%q, %q) = %v, want %v", tt.path, tt.dir, got, tt.want)
		}
	}
}
