package repository

import (
	"errors"
	"fmt"

	"github.com/joseph-ayodele/utility-bills/gen/ent"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/entity"
)

func toBillFile(e *ent.BillFile) *entity.BillFile {
	return &entity.BillFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		Filename:    e.Filename,
		ContentHash: e.ContentHash,
		FileSize:    e.FileSize,
		Provider:    e.Provider,
		Status:      e.Status,
		RoutedPath:  e.RoutedPath,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toReconcileJob(e *ent.ReconcileJob) *entity.ReconcileJob {
	return &entity.ReconcileJob{
		ID:            e.ID,
		FileID:        e.FileID,
		Status:        e.Status,
		Provider:      e.Provider,
		ModelName:     e.ModelName,
		PageCount:     e.PageCount,
		ExtractedJSON: e.ExtractedJSON,
		AnnotatedJSON: e.AnnotatedJSON,
		Corrections:   e.Corrections,
		Passed:        e.Passed,
		Matched:       e.Matched,
		Mismatched:    e.Mismatched,
		Inapplicable:  e.Inapplicable,
		ErrorMessage:  e.ErrorMessage,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
	}
}

// mapErr turns Ent's not-found into common.ErrNotFound so callers need not
// import the generated package.
func mapErr(err error, what string) error {
	if err == nil {
		return nil
	}
	var nf *ent.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Errorf("%s: %w", what, common.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", what, common.ErrDatabase, err)
}
