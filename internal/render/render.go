// Package render rasterizes PDF bills into page images for vision extraction.
package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/utility-bills/constants"
)

type Config struct {
	Pdftoppm string
	DPI      int
	MaxPages int
	// CacheDir holds one directory of page images per content hash.
	CacheDir string
}

// Page is one rendered page image.
type Page struct {
	Number int
	Path   string
}

type Renderer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRenderer(cfg Config, runner Runner, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = constants.RenderDPIDefault
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = constants.MaxRenderPagesDefault
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(os.TempDir(), "utility-bills")
	}
	if runner == nil {
		runner = ExecRunner{Logger: logger}
	}
	return &Renderer{cfg: cfg, runner: runner, logger: logger}
}

// Render converts the first MaxPages pages of pdfPath to PNGs. Results are
// cached under CacheDir by contentHash; an empty hash is computed from the file.
func (r *Renderer) Render(ctx context.Context, pdfPath, contentHash string) ([]Page, error) {
	if !constants.IsAllowedExt(filepath.Ext(pdfPath)) {
		return nil, fmt.Errorf("render: %s is not a pdf", filepath.Base(pdfPath))
	}
	if contentHash == "" {
		h, err := HashFile(pdfPath)
		if err != nil {
			return nil, err
		}
		contentHash = h
	}

	dir := filepath.Join(r.cfg.CacheDir, contentHash)
	prefix := filepath.Join(dir, "page")
	if pages := collect(prefix, r.cfg.MaxPages); len(pages) > 0 {
		r.logger.Debug("render.cache.hit", "path", pdfPath, "pages", len(pages))
		return pages, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: cache dir: %w", err)
	}

	// pdftoppm -r 150 -png -f 1 -l 6 <in.pdf> <dir/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm,
		"-r", strconv.Itoa(r.cfg.DPI),
		"-png",
		"-f", "1",
		"-l", strconv.Itoa(r.cfg.MaxPages),
		pdfPath, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("render: pdftoppm: %w: %s", err, truncate(strings.TrimSpace(string(errb)), 512))
	}

	pages := collect(prefix, r.cfg.MaxPages)
	if len(pages) == 0 {
		return nil, fmt.Errorf("render: pdftoppm produced no images for %s", filepath.Base(pdfPath))
	}
	r.logger.Info("render.ok", "path", pdfPath, "pages", len(pages), "dpi", r.cfg.DPI)
	return pages, nil
}

// collect finds prefix-N.png files (pdftoppm zero-pads N) in page order.
func collect(prefix string, max int) []Page {
	matches, _ := filepath.Glob(prefix + "-*.png")
	pages := make([]Page, 0, len(matches))
	for _, m := range matches {
		num := strings.TrimSuffix(strings.TrimPrefix(m, prefix+"-"), ".png")
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		pages = append(pages, Page{Number: n, Path: m})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })
	if max > 0 && len(pages) > max {
		pages = pages[:max]
	}
	return pages
}

// Paths returns the image paths of pages in order.
func Paths(pages []Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Path
	}
	return out
}

// HashFile returns the hex sha256 of a file's contents.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
