package ingest

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

// FSIngestor registers bill PDFs from the local filesystem.
type FSIngestor struct {
	Files      repository.BillFileRepository
	SkipHidden bool
	// ExcludeDirs are never descended into, typically the routing outputs.
	ExcludeDirs []string
	logger      *slog.Logger
}

func NewFSIngestor(files repository.BillFileRepository, logger *slog.Logger, excludeDirs ...string) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	var abs []string
	for _, d := range excludeDirs {
		if d == "" {
			continue
		}
		if a, err := filepath.Abs(d); err == nil {
			abs = append(abs, a)
		}
	}
	return &FSIngestor{
		Files:       files,
		SkipHidden:  true,
		ExcludeDirs: abs,
		logger:      logger,
	}
}

var _ Ingestor = (*FSIngestor)(nil)

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	out.SourcePath = abs

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !AllowedExt(ext) {
		return out, fmt.Errorf("%w: %q", common.ErrUnsupportedFile, ext)
	}

	sum, size, err := hashFile(abs)
	if err != nil {
		i.logger.Error("ingest.hash_failed", "path", abs, "error", err)
		return out, fmt.Errorf("hash: %w", err)
	}

	row, dedup, err := i.Files.UpsertByHash(ctx, abs, filepath.Base(abs), size, sum)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   abs,
		FileID:       row.ID,
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		Size:         size,
	}
	i.logger.Debug("ingest.file", "path", abs, "file_id", row.ID, "deduplicated", dedup)
	return out, nil
}

// IngestDirectory walks root and registers every PDF. Per-file failures are
// recorded in the results and do not stop the walk.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, fmt.Errorf("%w: root path is required", common.ErrInvalidInput)
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if d.IsDir() {
			if path != root && ((i.SkipHidden && IsHidden(path)) || i.excluded(path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if i.SkipHidden && IsHidden(path) {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		if r.Deduplicated {
			stats.Deduplicated++
		} else {
			stats.Registered++
		}
		return nil
	})

	i.logger.Info("ingest.directory",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"registered", stats.Registered,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return results, stats, err
		}
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func (i *FSIngestor) excluded(path string) bool {
	if len(i.ExcludeDirs) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, d := range i.ExcludeDirs {
		if within(abs, d) {
			return true
		}
	}
	return false
}
