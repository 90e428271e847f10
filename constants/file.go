package constants

import "strings"

// FileTypes holds the allowed values for the format column.
var FileTypes = []string{"PDF", "JSON"}

// AllowedExtensions holds the file extensions picked up by bill ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

const (
	// MaxRenderPagesDefault caps how many pages of a bill are sent to the model.
	MaxRenderPagesDefault = 6
	// RenderDPIDefault balances legibility of small table print against payload size.
	RenderDPIDefault = 150
	// MaxVisionMBDefault is the per-image size limit for vision requests.
	MaxVisionMBDefault = 8

	ProcessedDirName   = "processed"
	UnprocessedDirName = "unprocessed"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether ext (with or without dot) is ingestible.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
