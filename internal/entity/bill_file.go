package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillFile represents an ingested bill PDF for data transfer between layers.
type BillFile struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	Filename    string    `json:"filename"`
	ContentHash []byte    `json:"content_hash"`
	FileSize    int64     `json:"file_size"`
	Provider    *string   `json:"provider,omitempty"`
	Status      string    `json:"status"`
	RoutedPath  *string   `json:"routed_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
