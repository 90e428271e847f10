package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

// Service builds reports from stored jobs.
type Service struct {
	files  repository.BillFileRepository
	jobs   repository.ReconcileJobRepository
	logger *slog.Logger
}

func NewService(files repository.BillFileRepository, jobs repository.ReconcileJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{files: files, jobs: jobs, logger: logger}
}

// Rows loads every job finished since the given time (zero means all).
// Jobs whose file has been removed are reported under their file id.
func (s *Service) Rows(ctx context.Context, since time.Time) ([]Row, error) {
	jobs, err := s.jobs.ListFinished(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	rows := make([]Row, 0, len(jobs))
	for _, j := range jobs {
		source := j.FileID.String()
		if f, err := s.files.GetByID(ctx, j.FileID); err == nil {
			source = f.SourcePath
		}
		provider := ""
		if j.Provider != nil {
			provider = *j.Provider
		}
		finished := j.StartedAt
		if j.FinishedAt != nil {
			finished = *j.FinishedAt
		}
		row, err := RowFromStored(source, provider, j.Status, j.AnnotatedJSON, finished)
		if err != nil {
			s.logger.Warn("export.row.undecodable", "job_id", j.ID, "error", err)
		}
		if j.Passed != nil {
			row.Passed = *j.Passed
		}
		row.Corrections = countCorrections(j.Corrections)
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportXLSX returns the workbook for jobs finished since the given time.
func (s *Service) ExportXLSX(ctx context.Context, since time.Time) ([]byte, error) {
	start := time.Now()
	rows, err := s.Rows(ctx, since)
	if err != nil {
		return nil, err
	}
	b, err := XLSXReport(rows)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.xlsx.ok", "rows", len(rows), "elapsed_ms", time.Since(start).Milliseconds())
	return b, nil
}

// ExportPDF returns the provider summary for jobs finished since the given time.
func (s *Service) ExportPDF(ctx context.Context, since time.Time) ([]byte, error) {
	start := time.Now()
	rows, err := s.Rows(ctx, since)
	if err != nil {
		return nil, err
	}
	b, err := PDFSummary(rows, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.pdf.ok", "rows", len(rows), "elapsed_ms", time.Since(start).Milliseconds())
	return b, nil
}

func countCorrections(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return 0
	}
	return len(list)
}
