package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/utility-bills/internal/async"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/export"
	"github.com/joseph-ayodele/utility-bills/internal/ingest"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// ReconcilerService implements billrecon.v1.Reconciler. The ingestor and
// queue are optional; without them Submit is unavailable.
type ReconcilerService struct {
	engine   *reconcile.Engine
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewReconcilerService(engine *reconcile.Engine, ing ingest.Ingestor, queue async.Queue, logger *slog.Logger) *ReconcilerService {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = reconcile.NewEngine(logger)
	}
	return &ReconcilerService{engine: engine, ingestor: ing, queue: queue, logger: logger}
}

// Reconcile checks one extracted bill. The response carries the merged
// tree under "bill", the gate result under "passed" and one entry per
// check under "checks".
func (s *ReconcilerService) Reconcile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	log := common.LoggerFrom(ctx, s.logger)
	doc, err := documentFromStruct(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bill: %v", err)
	}
	if strings.TrimSpace(doc.Provider) == "" {
		return nil, status.Error(codes.InvalidArgument, "provider is required")
	}
	if rule, ok := s.engine.Registry().Lookup(doc.Provider); ok {
		doc.Provider = string(rule.Provider)
	}

	res, err := s.engine.Reconcile(doc)
	if err != nil {
		if errors.Is(err, reconcile.ErrUnknownProvider) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		log.Error("grpc.reconcile.failed", "error", err)
		return nil, common.StatusFromError(err)
	}

	row := export.RowFromResult("", res)
	checks := make([]any, 0, len(row.Checks))
	for _, c := range row.Checks {
		checks = append(checks, map[string]any{
			"annotation": c.Annotation,
			"outcome":    c.Outcome,
			"calculated": c.Calculated,
			"stated":     c.Stated,
			"difference": c.Difference,
			"formula":    c.Formula,
		})
	}
	out, err := toStruct(map[string]any{
		"provider":     res.Provider,
		"passed":       row.Passed,
		"status":       row.Status,
		"matched":      row.Matched,
		"mismatched":   row.Mismatched,
		"inapplicable": row.Inapplicable,
		"corrections":  res.Corrections,
		"checks":       checks,
		"bill":         res.Merge(doc),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	log.Info("grpc.reconcile.ok", "provider", res.Provider, "passed", row.Passed)
	return out, nil
}

// ListProviders returns every registered provider and its rule description.
func (s *ReconcilerService) ListProviders(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	rules := s.engine.Registry().Rules()
	list := make([]any, 0, len(rules))
	for _, r := range rules {
		list = append(list, map[string]any{
			"provider":    string(r.Provider),
			"description": r.Description,
		})
	}
	return toStruct(map[string]any{"providers": list})
}

// Submit registers a PDF by path and queues it for processing.
// Request fields: "path" (required) and "force".
func (s *ReconcilerService) Submit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.ingestor == nil || s.queue == nil {
		return nil, status.Error(codes.Unimplemented, "submit requires a database-backed server")
	}
	fields := req.GetFields()
	path := strings.TrimSpace(fields["path"].GetStringValue())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	force := fields["force"].GetBoolValue()

	ctx, _ = common.EnsureRequestID(ctx)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, common.StatusFromError(err)
	}
	queued := false
	if r.FileID != uuid.Nil && (!r.Deduplicated || force) {
		if err := s.queue.Enqueue(ctx, async.Job{FileID: r.FileID, Force: force}); err != nil {
			return nil, status.Errorf(codes.Unavailable, "enqueue: %v", err)
		}
		queued = true
	}
	s.logger.Info("grpc.submit.ok", "path", path, "file_id", r.FileID, "deduplicated", r.Deduplicated, "queued", queued)
	return toStruct(map[string]any{
		"file_id":      r.FileID.String(),
		"deduplicated": r.Deduplicated,
		"content_hash": r.HashHex,
		"queued":       queued,
	})
}
