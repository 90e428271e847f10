package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// FileReport is the result of reconciling an already-extracted JSON bill.
type FileReport struct {
	Path      string
	Provider  string
	Status    constants.JobStatus
	Result    *reconcile.Result
	Annotated map[string]any
}

// ReconcileFile reads an extracted bill from path and reconciles it. The
// provider comes from the document, or from the parent folder when the
// document does not name one.
func ReconcileFile(ctx context.Context, engine *reconcile.Engine, path string) (*FileReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := bill.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Provider == "" {
		doc.Provider = filepath.Base(filepath.Dir(path))
	}
	if rule, ok := engine.Registry().Lookup(doc.Provider); ok {
		doc.Provider = string(rule.Provider)
	}

	res, err := engine.Reconcile(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &FileReport{
		Path:      path,
		Provider:  res.Provider,
		Status:    constants.RouteStatus(res.Passed()),
		Result:    res,
		Annotated: res.Merge(doc),
	}, nil
}
