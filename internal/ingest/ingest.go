package ingest

import (
	"context"

	"github.com/google/uuid"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	FileID       uuid.UUID
	Deduplicated bool
	HashHex      string
	Size         int64
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Registered   uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the batch driver depends on.
type Ingestor interface {
	IngestPath(ctx context.Context, path string) (IngestionResult, error)
	IngestDirectory(ctx context.Context, root string) ([]IngestionResult, DirStats, error)
}
