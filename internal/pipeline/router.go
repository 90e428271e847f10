package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/utility-bills/constants"
)

// Router places a reconciled bill under processed/<provider>/ or
// unprocessed/<provider>/ next to a JSON sidecar holding the annotated tree.
type Router struct {
	ProcessedDir   string
	UnprocessedDir string
	// Move removes the source after a successful copy.
	Move   bool
	logger *slog.Logger
}

func NewRouter(processedDir, unprocessedDir string, move bool, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	if processedDir == "" {
		processedDir = constants.ProcessedDirName
	}
	if unprocessedDir == "" {
		unprocessedDir = constants.UnprocessedDirName
	}
	return &Router{ProcessedDir: processedDir, UnprocessedDir: unprocessedDir, Move: move, logger: logger}
}

// Dir returns the destination directory for a provider and gate result.
func (r *Router) Dir(provider string, passed bool) string {
	base := r.UnprocessedDir
	if passed {
		base = r.ProcessedDir
	}
	if provider == "" {
		provider = "unknown"
	}
	return filepath.Join(base, provider)
}

// Route copies (or moves) the PDF at src and writes its sidecar. It returns
// the PDF's new path. A different file already at the destination is never
// overwritten; a numeric suffix is added instead.
func (r *Router) Route(src, provider string, passed bool, annotated map[string]any) (string, error) {
	dir := r.Dir(provider, passed)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("route: mkdir: %w", err)
	}
	dest, err := freePath(dir, filepath.Base(src), src)
	if err != nil {
		return "", err
	}

	if !samePath(src, dest) {
		if err := r.place(src, dest); err != nil {
			return "", err
		}
	}
	if err := writeSidecar(sidecarPath(dest), annotated); err != nil {
		return "", err
	}

	event := "pipeline.route.unprocessed"
	if passed {
		event = "pipeline.route.processed"
	}
	r.logger.Info(event, "provider", provider, "src", src, "dest", dest, "moved", r.Move)
	return dest, nil
}

// RouteJSON writes only the annotated tree, for bills that arrived as JSON.
func (r *Router) RouteJSON(name, provider string, passed bool, annotated map[string]any) (string, error) {
	dir := r.Dir(provider, passed)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("route: mkdir: %w", err)
	}
	dest := sidecarPath(filepath.Join(dir, filepath.Base(name)))
	if err := writeSidecar(dest, annotated); err != nil {
		return "", err
	}
	return dest, nil
}

func (r *Router) place(src, dest string) error {
	if r.Move {
		if err := os.Rename(src, dest); err == nil {
			return nil
		}
		// cross-device: fall back to copy and remove
	}
	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("route: copy: %w", err)
	}
	if r.Move {
		if err := os.Remove(src); err != nil {
			r.logger.Warn("pipeline.route.remove_source_failed", "src", src, "error", err)
		}
	}
	return nil
}

func sidecarPath(pdf string) string {
	return strings.TrimSuffix(pdf, filepath.Ext(pdf)) + ".json"
}

func writeSidecar(path string, annotated map[string]any) error {
	b, err := json.MarshalIndent(annotated, "", "  ")
	if err != nil {
		return fmt.Errorf("route: encode sidecar: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("route: write sidecar: %w", err)
	}
	return os.Rename(tmp, path)
}

// freePath picks dir/name, or dir/name-N.ext when another file holds the name.
// A file that is src itself, or has identical content, is reused.
func freePath(dir, name, src string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 0; n < 1000; n++ {
		candidate := filepath.Join(dir, name)
		if n > 0 {
			candidate = filepath.Join(dir, stem+"-"+strconv.Itoa(n)+ext)
		}
		_, err := os.Stat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if samePath(src, candidate) || sameContent(src, candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("route: no free name for %s in %s", name, dir)
}

func samePath(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

func sameContent(a, b string) bool {
	ab, err := os.ReadFile(a)
	if err != nil {
		return false
	}
	bb, err := os.ReadFile(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
