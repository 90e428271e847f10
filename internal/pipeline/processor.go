// Package pipeline turns an ingested bill PDF into a routed, annotated bill:
// render pages, pick the provider, extract with the model, reconcile, and
// file the result under processed/ or unprocessed/.
package pipeline

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/entity"
	"github.com/joseph-ayodele/utility-bills/internal/llm"
	"github.com/joseph-ayodele/utility-bills/internal/observability/metrics"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
	"github.com/joseph-ayodele/utility-bills/internal/render"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

// ErrSkipped is returned when a file already reached a terminal status and
// reprocessing was not forced.
var ErrSkipped = errors.New("pipeline: file already processed")

// PageRenderer rasterizes a PDF into page images.
type PageRenderer interface {
	Render(ctx context.Context, pdfPath, contentHash string) ([]render.Page, error)
}

// Outcome summarizes one processed file.
type Outcome struct {
	FileID       uuid.UUID
	JobID        uuid.UUID
	Provider     string
	Status       constants.JobStatus
	Passed       bool
	RoutedPath   string
	Matched      int
	Mismatched   int
	Inapplicable int
	Corrections  int
	Dropped      []string
}

// Processor runs the full bill pipeline for one stored file.
type Processor struct {
	logger    *slog.Logger
	renderer  PageRenderer
	extractor llm.BillExtractor
	engine    *reconcile.Engine
	router    *Router
	files     repository.BillFileRepository
	jobs      repository.ReconcileJobRepository
}

func NewProcessor(
	logger *slog.Logger,
	renderer PageRenderer,
	extractor llm.BillExtractor,
	engine *reconcile.Engine,
	router *Router,
	files repository.BillFileRepository,
	jobs repository.ReconcileJobRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = reconcile.NewEngine(logger)
	}
	if router == nil {
		router = NewRouter("", "", false, logger)
	}
	return &Processor{
		logger:    logger,
		renderer:  renderer,
		extractor: extractor,
		engine:    engine,
		router:    router,
		files:     files,
		jobs:      jobs,
	}
}

// Process runs every stage for fileID. Any stage failure marks the job and
// the file FAILED and is returned; a failed gate is not an error.
func (p *Processor) Process(ctx context.Context, fileID uuid.UUID, force bool) (Outcome, error) {
	start := time.Now()
	out := Outcome{FileID: fileID}
	log := common.LoggerFrom(ctx, p.logger).With("file_id", fileID)

	file, err := p.files.GetByID(ctx, fileID)
	if err != nil {
		return out, err
	}
	if constants.JobStatus(file.Status).Terminal() && !force {
		log.Info("processor.skip", "status", file.Status)
		out.Status = constants.JobStatus(file.Status)
		return out, ErrSkipped
	}

	job, err := p.jobs.Start(ctx, fileID)
	if err != nil {
		return out, err
	}
	out.JobID = job.ID
	log = log.With("job_id", job.ID)
	if err := p.files.UpdateStatus(ctx, fileID, string(constants.JobStatusRunning), nil, nil); err != nil {
		return out, err
	}

	out, err = p.run(common.WithJobID(ctx, job.ID), log, file, out)
	if err != nil {
		log.Error("processor.failed", "error", err)
		if ferr := p.jobs.FinishFailure(ctx, job.ID, err.Error()); ferr != nil {
			log.Warn("processor.finish_failure.failed", "error", ferr)
		}
		var provider *string
		if out.Provider != "" {
			provider = &out.Provider
		}
		if uerr := p.files.UpdateStatus(ctx, fileID, string(constants.JobStatusFailed), provider, nil); uerr != nil {
			log.Warn("processor.update_status.failed", "error", uerr)
		}
		out.Status = constants.JobStatusFailed
		metrics.ObserveJob(string(out.Status), time.Since(start))
		return out, err
	}

	metrics.ObserveJob(string(out.Status), time.Since(start))
	log.Info("processor.done",
		"provider", out.Provider,
		"status", out.Status,
		"matched", out.Matched,
		"mismatched", out.Mismatched,
		"inapplicable", out.Inapplicable,
		"routed_path", out.RoutedPath,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (p *Processor) run(ctx context.Context, log *slog.Logger, file *entity.BillFile, out Outcome) (Outcome, error) {
	pages, err := p.renderer.Render(ctx, file.SourcePath, hex.EncodeToString(file.ContentHash))
	if err != nil {
		return out, fmt.Errorf("render: %w", err)
	}
	if len(pages) == 0 {
		return out, common.NewAppError("RENDER_EMPTY", "no pages rendered", common.ErrExtraction)
	}
	images := render.Paths(pages)
	folder := filepath.Base(filepath.Dir(file.SourcePath))

	rule, err := p.resolveRule(ctx, log, file, folder, images)
	if err != nil {
		return out, err
	}
	out.Provider = string(rule.Provider)

	ext, err := p.extractor.ExtractBill(ctx, llm.ExtractRequest{
		Rule:         rule,
		Images:       images,
		FilenameHint: file.Filename,
		FolderHint:   folder,
	})
	if err != nil {
		return out, fmt.Errorf("extract: %w", err)
	}
	out.Dropped = ext.Dropped
	if err := p.jobs.SetExtracted(ctx, out.JobID, out.Provider, ext.Model, len(pages), ext.Raw); err != nil {
		return out, err
	}

	doc := ext.Document
	doc.Provider = out.Provider
	res, err := p.engine.Reconcile(doc)
	if err != nil {
		return out, err
	}
	annotated := res.Merge(doc)
	out.Passed = res.Passed()
	out.Status = constants.RouteStatus(out.Passed)
	out.Matched, out.Mismatched, out.Inapplicable = res.Counts()
	out.Corrections = len(res.Corrections)

	routed, err := p.router.Route(file.SourcePath, out.Provider, out.Passed, annotated)
	if err != nil {
		return out, err
	}
	out.RoutedPath = routed

	annotatedJSON, err := json.Marshal(annotated)
	if err != nil {
		return out, fmt.Errorf("encode annotated: %w", err)
	}
	correctionsJSON, err := json.Marshal(res.Corrections)
	if err != nil {
		return out, fmt.Errorf("encode corrections: %w", err)
	}
	if err := p.jobs.Finish(ctx, out.JobID, entity.JobOutcome{
		Status:       string(out.Status),
		Passed:       out.Passed,
		Annotated:    annotatedJSON,
		Corrections:  correctionsJSON,
		Matched:      out.Matched,
		Mismatched:   out.Mismatched,
		Inapplicable: out.Inapplicable,
	}); err != nil {
		return out, err
	}
	if err := p.files.UpdateStatus(ctx, file.ID, string(out.Status), &out.Provider, &routed); err != nil {
		return out, err
	}
	return out, nil
}

// resolveRule trusts a stored provider first, then the parent folder name,
// and only then asks the model.
func (p *Processor) resolveRule(ctx context.Context, log *slog.Logger, file *entity.BillFile, folder string, images []string) (reconcile.Rule, error) {
	reg := p.engine.Registry()
	if file.Provider != nil {
		if rule, ok := reg.Lookup(*file.Provider); ok {
			return rule, nil
		}
	}
	if rule, ok := reg.Lookup(folder); ok {
		log.Debug("processor.provider.folder", "folder", folder, "provider", rule.Provider)
		return rule, nil
	}

	candidates := make([]string, 0, len(reg.Providers()))
	for _, pr := range reg.Providers() {
		candidates = append(candidates, string(pr))
	}
	detected, err := p.extractor.DetectProvider(ctx, llm.DetectRequest{
		Images:       images,
		FilenameHint: file.Filename,
		FolderHint:   folder,
		Candidates:   candidates,
	})
	if err != nil {
		return reconcile.Rule{}, fmt.Errorf("detect provider: %w", err)
	}
	rule, ok := reg.Lookup(detected)
	if !ok {
		return reconcile.Rule{}, fmt.Errorf("%w: %q", reconcile.ErrUnknownProvider, detected)
	}
	log.Info("processor.provider.detected", "provider", rule.Provider)
	return rule, nil
}
