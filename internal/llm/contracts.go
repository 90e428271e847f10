package llm

import (
	"context"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// ExtractRequest describes one bill to extract. Images are rendered page
// PNGs in page order.
type ExtractRequest struct {
	Rule         reconcile.Rule
	Images       []string
	FilenameHint string
	FolderHint   string
}

// Extraction is the validated model output.
type Extraction struct {
	Document *bill.Document
	Raw      []byte
	Model    string
	// Dropped lists fields the lenient sanitizer rewrote or removed.
	Dropped []string
}

// DetectRequest asks which provider issued a bill.
type DetectRequest struct {
	Images       []string
	FilenameHint string
	FolderHint   string
	Candidates   []string
}

// BillExtractor is the interface the pipeline depends on.
type BillExtractor interface {
	DetectProvider(ctx context.Context, req DetectRequest) (string, error)
	ExtractBill(ctx context.Context, req ExtractRequest) (Extraction, error)
}
